package figure

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"guru-ai-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

type stubCatalog struct {
	figures  map[string]*entity.ContentFigure
	failures map[string]error
	lookups  []string
}

func (s *stubCatalog) FindFigure(ctx context.Context, subject, medium, figureId string) (*entity.ContentFigure, error) {
	s.lookups = append(s.lookups, figureId)
	if err, ok := s.failures[figureId]; ok {
		return nil, err
	}
	return s.figures[figureId], nil
}

func newTestMatcher(catalog Catalog) *Matcher {
	return NewMatcher(catalog, log.New(io.Discard, "", 0))
}

func TestMatcher_ResolvesFigureIds(t *testing.T) {
	catalog := &stubCatalog{
		figures: map[string]*entity.ContentFigure{
			"4.5": {ImageURL: "https://cdn.example.com/fig-4-5.png", Description: "Figure 4.5 digestive system"},
		},
	}
	m := newTestMatcher(catalog)

	figures := m.Match(context.Background(), []string{"Figure 4.5 shows the digestive system"}, "Science", "Sinhala")

	assert.Len(t, figures, 1)
	assert.Equal(t, "https://cdn.example.com/fig-4-5.png", figures[0].ImageURL)
	assert.Equal(t, []string{"4.5"}, catalog.lookups)
}

func TestMatcher_CapsAtThreeIds(t *testing.T) {
	catalog := &stubCatalog{figures: map[string]*entity.ContentFigure{}}
	m := newTestMatcher(catalog)

	m.Match(context.Background(), []string{"See 1.1, 2.2, 3.3 and also 4.4"}, "Science", "English")

	// Only the first three distinct ids reach the catalog, in text order.
	assert.Equal(t, []string{"1.1", "2.2", "3.3"}, catalog.lookups)
}

func TestMatcher_DeduplicatesIdsAndUrls(t *testing.T) {
	shared := &entity.ContentFigure{ImageURL: "https://cdn.example.com/shared.png"}
	catalog := &stubCatalog{
		figures: map[string]*entity.ContentFigure{
			"1.1": shared,
			"2.2": shared,
		},
	}
	m := newTestMatcher(catalog)

	figures := m.Match(context.Background(), []string{"1.1 and 1.1 again, plus 2.2"}, "Science", "English")

	assert.Equal(t, []string{"1.1", "2.2"}, catalog.lookups)
	assert.Len(t, figures, 1)
}

func TestMatcher_LookupFailureIsIsolated(t *testing.T) {
	catalog := &stubCatalog{
		figures: map[string]*entity.ContentFigure{
			"2.2": {ImageURL: "https://cdn.example.com/fig-2-2.png"},
		},
		failures: map[string]error{
			"1.1": errors.New("db down"),
		},
	}
	m := newTestMatcher(catalog)

	figures := m.Match(context.Background(), []string{"1.1 then 2.2"}, "Science", "English")

	assert.Len(t, figures, 1)
	assert.Equal(t, "https://cdn.example.com/fig-2-2.png", figures[0].ImageURL)
}

func TestMatcher_NoIdsNoLookups(t *testing.T) {
	catalog := &stubCatalog{}
	m := newTestMatcher(catalog)

	figures := m.Match(context.Background(), []string{"plain text without references"}, "Science", "English")

	assert.Empty(t, figures)
	assert.Empty(t, catalog.lookups)
}
