// Package file provides a catalog backed by the generated
// metadata.json that the content indexer writes on the hotspot device.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// resourceEntry mirrors one metadata.json record.
type resourceEntry struct {
	ID       json.Number `json:"id"`
	Title    string      `json:"title"`
	Filepath string      `json:"filepath"`
	Format   string      `json:"format"`
	Category string      `json:"category"`
}

// Catalog reads resources from a metadata.json file.
type Catalog struct {
	mu   sync.Mutex
	path string
}

// NewCatalog creates a catalog over the metadata file at path.
func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

// Path returns the metadata file path.
func (c *Catalog) Path() string {
	return c.path
}

// List returns all catalogued resources in file order. Resource paths
// are resolved relative to the metadata file's directory, matching how
// the indexer writes them.
func (c *Catalog) List(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []resourceEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	baseDir := filepath.Dir(c.path)

	docs := make([]domain.Document, 0, len(entries))
	for _, entry := range entries {
		id := entry.ID.String()
		if id == "" {
			// Hand-edited catalogs sometimes omit ids.
			id = uuid.New().String()
		}

		title := entry.Title
		if title == "" {
			title = titleFromFilename(entry.Filepath)
		}

		category := domain.Category(entry.Category)
		if category == "" {
			category = domain.CategoryOther
		}

		docs = append(docs, domain.Document{
			ID:       id,
			Title:    title,
			Category: category,
			Path:     filepath.Join(baseDir, filepath.FromSlash(entry.Filepath)),
			Format:   entry.Format,
		})
	}
	return docs, nil
}

// titleFromFilename converts a file name into a readable title:
// "physics-class-9.pdf" becomes "Physics Class 9".
func titleFromFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")

	words := strings.Fields(name)
	for i, word := range words {
		if word[0] >= '0' && word[0] <= '9' {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
