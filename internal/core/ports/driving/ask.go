package driving

import (
	"context"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
)

// AskService answers natural-language questions from indexed resources.
type AskService interface {
	// Ask runs the full pipeline for one query: ensure the index is
	// fresh, rank chunks (remote override first, local scorer as
	// fallback), and synthesize an extractive answer.
	//
	// Returns domain.ErrEmptyQuery or domain.ErrNoMatch when no answer
	// exists; the host renders those as its "no answer" message.
	Ask(ctx context.Context, query string) (*domain.Answer, error)
}

// SearchService ranks indexed chunks against a query.
type SearchService interface {
	// Search returns at most topK chunks sorted by non-increasing
	// score. A query with no content keywords returns an empty slice.
	Search(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error)
}
