package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Nothing in this package is fatal to a query: every error below degrades
// to "no answer found" at the service layer.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDocumentUnavailable indicates text extraction failed or produced
	// too little text. The document is skipped during an index build;
	// the build itself continues.
	ErrDocumentUnavailable = errors.New("document unavailable")

	// ErrEmptyQuery indicates the query yielded no content keywords
	// (for example, pure punctuation). Recovered as an empty result set.
	ErrEmptyQuery = errors.New("query has no content words")

	// ErrNoMatch indicates the query had keywords but nothing scored
	// above the floor. Recovered as an empty result set.
	ErrNoMatch = errors.New("no matching content")

	// ErrRemoteUnavailable indicates the optional remote ranking service
	// is unreachable or returned garbage. Recovered by falling back to
	// local scoring; never surfaced to a caller.
	ErrRemoteUnavailable = errors.New("remote ranking unavailable")

	// ErrUnsupportedFormat indicates no text extractor handles the
	// document's format.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
