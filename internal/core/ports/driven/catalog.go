package driven

import (
	"context"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
)

// Catalog lists the resources available for indexing.
// Backed by the generated metadata.json on the hotspot device.
type Catalog interface {
	// List returns all catalogued resources in catalog order.
	List(ctx context.Context) ([]domain.Document, error)
}
