// Package plaintext extracts text from already-plain files.
package plaintext

import (
	"context"
	"os"
	"strings"

	"github.com/ilmify/ilmify-cli/internal/extractors"
)

// Ensure Extractor implements the interface.
var _ extractors.Extractor = (*Extractor)(nil)

// Extractor reads plain text files as-is. There is no page structure,
// so the page limit is ignored.
type Extractor struct{}

// New creates a plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Formats returns the file formats this extractor handles.
func (e *Extractor) Formats() []string {
	return []string{"txt", "text", "md"}
}

// Extract reads the whole file.
func (e *Extractor) Extract(ctx context.Context, path string, _ int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
