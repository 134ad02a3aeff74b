// Package pdf extracts plain text from PDF resources.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ilmify/ilmify-cli/internal/extractors"
)

// Ensure Extractor implements the interface.
var _ extractors.Extractor = (*Extractor)(nil)

// Extractor reads text from PDF files page by page.
type Extractor struct{}

// New creates a PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Formats returns the file formats this extractor handles.
func (e *Extractor) Formats() []string {
	return []string{"pdf"}
}

// Extract reads up to maxPages pages of the PDF at path. Pages that
// fail text extraction individually (malformed fonts, scans) are
// skipped; the document only fails when it cannot be opened at all.
func (e *Extractor) Extract(ctx context.Context, path string, maxPages int) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	if maxPages > 0 && numPages > maxPages {
		numPages = maxPages
	}

	var parts []string
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}
