package mapper

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/model"
)

// ContentMapper converts documents and figure-catalog rows. Subject,
// medium and grade ride in the document metadata JSON, matching the
// metadata->> filters used by the retriever.
type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) DocumentToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
		Id:        d.Id,
		Content:   d.Content,
		Subject:   metadataString(d.Metadata, "subject"),
		Medium:    metadataString(d.Metadata, "medium"),
		Grade:     metadataString(d.Metadata, "grade"),
		CreatedAt: d.CreatedAt,
	}
}

func (m *ContentMapper) DocumentToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}
	metadata := datatypes.JSONMap{
		"subject": d.Subject,
		"medium":  d.Medium,
	}
	if d.Grade != "" {
		metadata["grade"] = d.Grade
	}
	return &model.Document{
		Id:        d.Id,
		Content:   d.Content,
		Metadata:  metadata,
		CreatedAt: d.CreatedAt,
	}
}

func (m *ContentMapper) FigureToEntity(f *model.ContentFigure) *entity.ContentFigure {
	if f == nil {
		return nil
	}
	return &entity.ContentFigure{
		Id:          f.Id,
		Subject:     f.Subject,
		Medium:      f.Medium,
		ImageURL:    f.ImageURL,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
	}
}

func (m *ContentMapper) FigureToModel(f *entity.ContentFigure) *model.ContentFigure {
	if f == nil {
		return nil
	}
	return &model.ContentFigure{
		Id:          f.Id,
		Subject:     f.Subject,
		Medium:      f.Medium,
		ImageURL:    f.ImageURL,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
	}
}

func (m *ContentMapper) EmbeddingToModel(e *entity.DocumentEmbedding) *model.DocumentEmbedding {
	if e == nil {
		return nil
	}
	return &model.DocumentEmbedding{
		Id:             e.Id,
		DocumentId:     e.DocumentId,
		Chunk:          e.Chunk,
		EmbeddingValue: pgvector.NewVector(e.Values),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func metadataString(m datatypes.JSONMap, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
