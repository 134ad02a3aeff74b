package extractors

import (
	"context"
	"fmt"
	"strings"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driven"
)

// Ensure Registry implements the port.
var _ driven.TextExtractor = (*Registry)(nil)

// Extractor converts one family of file formats to plain text.
type Extractor interface {
	// Formats returns the file formats this extractor handles.
	Formats() []string

	// Extract reads up to maxPages pages of the file at path.
	// A maxPages of zero or less means no limit.
	Extract(ctx context.Context, path string, maxPages int) (string, error)
}

// Registry selects an extractor by document format.
type Registry struct {
	byFormat map[string]Extractor
}

// NewRegistry creates a registry over the given extractors.
// Later extractors win format conflicts.
func NewRegistry(extractors ...Extractor) *Registry {
	byFormat := make(map[string]Extractor)
	for _, ext := range extractors {
		for _, format := range ext.Formats() {
			byFormat[strings.ToLower(format)] = ext
		}
	}
	return &Registry{byFormat: byFormat}
}

// Extract dispatches to the extractor registered for the document's
// format. Unknown formats (videos, unsupported binaries) return
// domain.ErrUnsupportedFormat; read failures are wrapped in
// domain.ErrDocumentUnavailable.
func (r *Registry) Extract(ctx context.Context, doc domain.Document, maxPages int) (string, error) {
	ext, ok := r.byFormat[strings.ToLower(doc.Format)]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, doc.Format)
	}

	text, err := ext.Extract(ctx, doc.Path, maxPages)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrDocumentUnavailable, doc.Path, err)
	}
	return text, nil
}
