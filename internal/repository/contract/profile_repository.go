package contract

import (
	"context"

	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	// FindProfile looks up a profile by user id, nil when absent.
	FindProfile(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)
	// DeductCredit atomically decrements credits_left by one, guarded so the
	// balance never goes negative. Returns the remaining credits.
	DeductCredit(ctx context.Context, userId uuid.UUID) (int, error)
}
