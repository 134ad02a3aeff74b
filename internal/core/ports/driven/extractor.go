package driven

import (
	"context"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
)

// TextExtractor produces plain text from a resource file.
// Extraction is the only unbounded-latency step in an index build;
// callers should bound it with a context deadline.
type TextExtractor interface {
	// Extract reads up to maxPages pages of the document and returns
	// its plain text. A maxPages of zero or less means no page limit.
	//
	// Returns domain.ErrUnsupportedFormat when no extractor handles the
	// document's format, and domain.ErrDocumentUnavailable (possibly
	// wrapped) when the file cannot be read. Either way the index
	// builder skips the document and carries on.
	Extract(ctx context.Context, doc domain.Document, maxPages int) (string, error)
}
