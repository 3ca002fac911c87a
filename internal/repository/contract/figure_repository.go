package contract

import (
	"context"

	"guru-ai-be/internal/entity"
)

type FigureRepository interface {
	Create(ctx context.Context, figure *entity.ContentFigure) error
	// FindFigure returns at most one catalog row whose subject and medium
	// match exactly and whose description contains "Figure <figureId>"
	// case-insensitively. Nil when nothing matches.
	FindFigure(ctx context.Context, subject, medium, figureId string) (*entity.ContentFigure, error)
}
