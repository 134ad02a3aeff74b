// Package memory provides an in-memory index cache.
// Used in tests and when no data directory is configured; the index
// then lives only as long as the process.
package memory

import (
	"context"
	"sync"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.IndexCache = (*Cache)(nil)

// Cache is an in-memory implementation of driven.IndexCache.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]domain.Index
}

// NewCache creates a new in-memory index cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]domain.Index),
	}
}

// Load returns the cached index for the schema version.
func (c *Cache) Load(_ context.Context, schemaVersion string) (*domain.Index, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.entries[schemaVersion]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &idx, nil
}

// Save stores the index under the schema version.
func (c *Cache) Save(_ context.Context, schemaVersion string, index *domain.Index) error {
	if index == nil {
		return domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[schemaVersion] = *index
	return nil
}
