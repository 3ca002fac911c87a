package implementation

import (
	"context"
	"errors"
	"fmt"

	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/mapper"
	"guru-ai-be/internal/model"
	"guru-ai-be/internal/repository/contract"
	"guru-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var m model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProfileRepositoryImpl) FindProfile(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	return r.FindOne(ctx, specification.ByID{ID: userId})
}

func (r *ProfileRepositoryImpl) DeductCredit(ctx context.Context, userId uuid.UUID) (int, error) {
	// Guarded decrement so concurrent turns can never push the balance
	// below zero.
	result := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ? AND credits_left > 0", userId).
		UpdateColumn("credits_left", gorm.Expr("credits_left - 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("profile %s has no credits to deduct", userId)
	}

	profile, err := r.FindProfile(ctx, userId)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 0, fmt.Errorf("profile %s not found after deduction", userId)
	}
	return profile.CreditsLeft, nil
}
