package driving

import (
	"context"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
)

// IndexOrchestrator coordinates index builds.
type IndexOrchestrator interface {
	// Current returns a ready index, building one first if none exists
	// or the existing one has outlived its TTL. Concurrent callers
	// share a single in-flight build.
	Current(ctx context.Context) (*domain.Index, error)

	// Build forces a rebuild, bypassing the cached index.
	Build(ctx context.Context) (*domain.Index, error)

	// Invalidate marks the current index stale so the next query
	// triggers a rebuild. Called when the catalog changes.
	Invalidate()

	// Status reports the current build state.
	Status() BuildStatus
}

// BuildStatus is a snapshot of the index builder's state.
type BuildStatus struct {
	// Building is true while a build is in flight.
	Building bool

	// Ready is true when a usable index snapshot exists.
	Ready bool

	// Entries is the chunk count of the ready snapshot, if any.
	Entries int

	// DocumentsIndexed counts documents that contributed chunks.
	DocumentsIndexed int

	// DocumentsSkipped counts documents dropped during the last build
	// (extraction failure or too little text).
	DocumentsSkipped int
}
