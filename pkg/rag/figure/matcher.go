package figure

import (
	"context"
	"log"
	"regexp"

	"guru-ai-be/internal/entity"
)

var figureIdPattern = regexp.MustCompile(`\d+\.\d+`)

const maxFigures = 3

// Catalog looks up a single catalog figure for a subject/medium pair.
type Catalog interface {
	FindFigure(ctx context.Context, subject, medium, figureId string) (*entity.ContentFigure, error)
}

// Matcher resolves figure references mentioned inside retrieved passages
// to catalog images. Strict mode: only explicit figure ids (4.5, 10.2)
// trigger a lookup, there is no fallback to page numbers.
type Matcher struct {
	catalog Catalog
	logger  *log.Logger
}

func NewMatcher(catalog Catalog, logger *log.Logger) *Matcher {
	return &Matcher{
		catalog: catalog,
		logger:  logger,
	}
}

// Match scans the passages for figure ids and resolves the first three
// distinct ones against the catalog. Results are deduplicated by image
// URL; a failed lookup is logged and skipped.
func (m *Matcher) Match(ctx context.Context, passages []string, subject, medium string) []*entity.ContentFigure {
	foundIds := make([]string, 0)
	seenIds := make(map[string]struct{})
	for _, text := range passages {
		for _, id := range figureIdPattern.FindAllString(text, -1) {
			if _, dup := seenIds[id]; dup {
				continue
			}
			seenIds[id] = struct{}{}
			foundIds = append(foundIds, id)
		}
	}
	if len(foundIds) > maxFigures {
		foundIds = foundIds[:maxFigures]
	}

	figures := make([]*entity.ContentFigure, 0)
	seenUrls := make(map[string]struct{})
	for _, fid := range foundIds {
		fig, err := m.catalog.FindFigure(ctx, subject, medium, fid)
		if err != nil {
			m.logger.Printf("[FIGURE] Lookup for %s failed: %v", fid, err)
			continue
		}
		if fig == nil {
			continue
		}
		if _, dup := seenUrls[fig.ImageURL]; dup {
			continue
		}
		seenUrls[fig.ImageURL] = struct{}{}
		figures = append(figures, fig)
	}

	m.logger.Printf("[FIGURE] %d ids in text -> %d images", len(foundIds), len(figures))
	return figures
}
