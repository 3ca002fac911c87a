package contract

import (
	"context"

	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.DocumentEmbedding) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
