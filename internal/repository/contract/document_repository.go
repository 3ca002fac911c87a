package contract

import (
	"context"

	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/repository/specification"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchContent returns passage contents matching one keyword as a
	// case-insensitive substring, filtered by subject/medium and, when
	// non-empty, grade. Result order follows the store.
	SearchContent(ctx context.Context, keyword, subject, medium, grade string, limit int) ([]string, error)
}
