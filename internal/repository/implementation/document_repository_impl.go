package implementation

import (
	"context"
	"errors"

	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/mapper"
	"guru-ai-be/internal/model"
	"guru-ai-be/internal/repository/contract"
	"guru-ai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewDocumentRepository(db *gorm.DB) contract.DocumentRepository {
	return &DocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *DocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentRepositoryImpl) Create(ctx context.Context, document *entity.Document) error {
	m := r.mapper.DocumentToModel(document)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.DocumentToEntity(m)
	return nil
}

func (r *DocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	var m model.Document
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DocumentToEntity(&m), nil
}

func (r *DocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Document{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DocumentRepositoryImpl) SearchContent(ctx context.Context, keyword, subject, medium, grade string, limit int) ([]string, error) {
	specs := []specification.Specification{
		specification.MetadataEquals{Key: "subject", Value: subject},
		specification.MetadataEquals{Key: "medium", Value: medium},
		specification.ContentContains{Keyword: keyword},
		specification.Limit{Count: limit},
	}
	if grade != "" {
		specs = append(specs, specification.MetadataEquals{Key: "grade", Value: grade})
	}

	var models []*model.Document
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Document{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	contents := make([]string, 0, len(models))
	for _, m := range models {
		contents = append(contents, m.Content)
	}
	return contents, nil
}
