package driven

import (
	"context"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
)

// IndexCache persists a built index across sessions, keyed by a schema
// version tag. A cache hit whose index is still within its TTL lets a
// session skip text extraction entirely.
type IndexCache interface {
	// Load returns the cached index for the given schema version.
	// Returns domain.ErrNotFound when no entry exists.
	Load(ctx context.Context, schemaVersion string) (*domain.Index, error)

	// Save stores the index under the given schema version, replacing
	// any previous entry.
	Save(ctx context.Context, schemaVersion string, index *domain.Index) error
}
