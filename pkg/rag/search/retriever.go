package search

import (
	"context"
	"log"
)

// DocumentStore runs a single keyword search against the document corpus.
type DocumentStore interface {
	SearchContent(ctx context.Context, keyword, subject, medium, grade string, limit int) ([]string, error)
}

// Filters scope a retrieval to the student's curriculum slice.
type Filters struct {
	Subject string
	Medium  string
	Grade   string
}

// Retriever collects note passages matching the interpreted keywords.
type Retriever struct {
	store           DocumentStore
	perKeywordLimit int
	logger          *log.Logger
}

func NewRetriever(store DocumentStore, perKeywordLimit int, logger *log.Logger) *Retriever {
	return &Retriever{
		store:           store,
		perKeywordLimit: perKeywordLimit,
		logger:          logger,
	}
}

// Retrieve searches each keyword and merges the hits, first seen wins.
// Keywords shorter than 3 bytes are skipped as noise. A failed keyword
// search is logged and skipped so one bad keyword cannot sink the turn.
func (r *Retriever) Retrieve(ctx context.Context, keywords []string, filters Filters) []string {
	seen := make(map[string]struct{})
	passages := make([]string, 0)

	for _, kw := range keywords {
		if len(kw) < 3 {
			continue
		}

		hits, err := r.store.SearchContent(ctx, kw, filters.Subject, filters.Medium, filters.Grade, r.perKeywordLimit)
		if err != nil {
			r.logger.Printf("[SEARCH] Keyword %q failed: %v", kw, err)
			continue
		}

		for _, hit := range hits {
			if _, dup := seen[hit]; dup {
				continue
			}
			seen[hit] = struct{}{}
			passages = append(passages, hit)
		}
	}

	r.logger.Printf("[SEARCH] %d keywords -> %d unique passages", len(keywords), len(passages))
	return passages
}
