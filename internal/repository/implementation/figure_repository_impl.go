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

	"gorm.io/gorm"
)

type FigureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewFigureRepository(db *gorm.DB) contract.FigureRepository {
	return &FigureRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *FigureRepositoryImpl) Create(ctx context.Context, figure *entity.ContentFigure) error {
	m := r.mapper.FigureToModel(figure)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*figure = *r.mapper.FigureToEntity(m)
	return nil
}

func (r *FigureRepositoryImpl) FindFigure(ctx context.Context, subject, medium, figureId string) (*entity.ContentFigure, error) {
	specs := []specification.Specification{
		specification.SubjectIs{Subject: subject},
		specification.MediumIs{Medium: medium},
		specification.DescriptionContains{Text: fmt.Sprintf("Figure %s", figureId)},
	}

	var m model.ContentFigure
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FigureToEntity(&m), nil
}
