package domain

import "time"

// Category classifies a catalogued resource by content type.
type Category string

// Known resource categories. The catalog may carry others (folder-derived);
// they are passed through untouched.
const (
	// CategoryTextbook is a curriculum textbook PDF.
	CategoryTextbook Category = "textbooks"

	// CategoryHealthGuide is a health/first-aid guide PDF.
	CategoryHealthGuide Category = "health-guides"

	// CategoryVideo is a video resource. Videos carry no extractable text
	// and are skipped during index builds.
	CategoryVideo Category = "videos"

	// CategoryOther is anything the catalog could not classify.
	CategoryOther Category = "uncategorized"
)

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Document represents a catalogued resource eligible for indexing.
// It is immutable once loaded from the catalog.
type Document struct {
	// ID is the catalog identifier for the resource.
	ID string

	// Title is the human-readable title.
	Title string

	// Category classifies the resource.
	Category Category

	// Path is the location of the resource on disk.
	Path string

	// Format is the file format ("pdf", "txt", "mp4", ...).
	Format string

	// RawText holds pre-extracted text, if the catalog already has it.
	// When empty, text is obtained through a TextExtractor.
	RawText string
}

// Chunk is a bounded, sentence-aligned passage of a document.
// Chunks are created during an index build and never mutated.
type Chunk struct {
	// ID is derived as "<documentID>_<ordinal>" and is stable across
	// rebuilds of the same content.
	ID string

	// Title is inherited from the source document.
	Title string

	// Category is inherited from the source document.
	Category Category

	// Content is the passage text. Its length respects the configured
	// chunk size, except that a single oversized sentence is never split.
	Content string

	// Keywords is the tokenizer output for Content. Recomputing it from
	// the same content yields the same set.
	Keywords map[string]struct{}
}

// HasKeyword reports whether kw survived keyword extraction for this chunk.
func (c *Chunk) HasKeyword(kw string) bool {
	_, ok := c.Keywords[kw]
	return ok
}

// Index is the searchable collection of all chunks plus build metadata.
// An Index is immutable: rebuilds replace it wholesale, never patch it,
// so concurrent readers always observe a complete snapshot.
type Index struct {
	// Entries holds the chunks in document-then-ordinal order.
	Entries []Chunk

	// BuiltAt is when the build completed.
	BuiltAt time.Time

	// TTL is how long the index stays fresh. Zero means never expires.
	TTL time.Duration
}

// Expired reports whether the index is older than its TTL at time now.
func (ix *Index) Expired(now time.Time) bool {
	if ix == nil {
		return true
	}
	if ix.TTL <= 0 {
		return false
	}
	return now.Sub(ix.BuiltAt) > ix.TTL
}

// ScoredChunk pairs a chunk with its relevance score for one query.
// It exists only for the duration of that query.
type ScoredChunk struct {
	// Chunk is the matched passage.
	Chunk Chunk

	// Score is the non-negative heuristic relevance score.
	Score float64
}

// Answer is an extractive answer assembled from the top-ranked chunks.
type Answer struct {
	// Text is the synthesized answer.
	Text string

	// Sources lists the distinct titles of the contributing documents.
	Sources []string

	// Category is the category of the top-ranked chunk.
	Category Category

	// Score is the score of the top-ranked chunk.
	Score float64
}
