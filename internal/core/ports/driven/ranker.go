package driven

import (
	"context"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
)

// RemoteRanker is an optional semantic-search service whose results
// supersede the local keyword scorer when available.
type RemoteRanker interface {
	// Rank returns up to topK chunks for the query, best first.
	// Any transport failure, malformed response, or empty result set is
	// reported as domain.ErrRemoteUnavailable (possibly wrapped); the
	// caller then falls back to local scoring and never surfaces the
	// error to the user.
	Rank(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error)
}
