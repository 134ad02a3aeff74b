package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ilmify/ilmify-cli/internal/chunker"
	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driven"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driving"
	"github.com/ilmify/ilmify-cli/internal/logger"
	"github.com/ilmify/ilmify-cli/internal/tokenizer"
)

// Ensure IndexBuilder implements the interface.
var _ driving.IndexOrchestrator = (*IndexBuilder)(nil)

// SchemaVersion tags cached indexes. Bump when the chunk layout or
// keyword extraction changes so stale caches are ignored.
const SchemaVersion = "v1"

// BuildOptions bounds an index build.
type BuildOptions struct {
	// MaxDocuments caps how many catalog entries are indexed,
	// in catalog order.
	MaxDocuments int

	// MaxPagesPerDocument caps extraction per document.
	MaxPagesPerDocument int

	// ChunkSize is the soft chunk size bound in characters.
	ChunkSize int

	// MinTextLength drops documents whose extracted text is shorter
	// (scan failures, near-empty files).
	MinTextLength int

	// MinChunkLength drops fragment chunks below this many characters.
	MinChunkLength int

	// Concurrency bounds parallel text extraction.
	Concurrency int

	// TTL is how long a built index stays fresh.
	TTL time.Duration
}

// DefaultBuildOptions returns the build bounds used by the portal.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		MaxDocuments:        25,
		MaxPagesPerDocument: 50,
		ChunkSize:           chunker.DefaultChunkSize,
		MinTextLength:       150,
		MinChunkLength:      50,
		Concurrency:         5,
		TTL:                 time.Hour,
	}
}

// buildCall is one in-flight build shared by all waiting callers.
type buildCall struct {
	done  chan struct{}
	index *domain.Index
	err   error
}

// IndexBuilder builds and owns the chunk index.
//
// The index is replaced wholesale on rebuild, never patched in place,
// so queries always see a complete snapshot. A single-flight guard
// ensures concurrent build requests share one build.
type IndexBuilder struct {
	catalog   driven.Catalog
	extractor driven.TextExtractor
	cache     driven.IndexCache // optional
	opts      BuildOptions

	mu       sync.Mutex
	current  *domain.Index
	inflight *buildCall
	dirty    bool // set by Invalidate; the next build bypasses the cache

	lastIndexed int
	lastSkipped int
}

// NewIndexBuilder creates an index builder. The cache is optional;
// without it every session rebuilds from scratch.
func NewIndexBuilder(
	catalog driven.Catalog,
	extractor driven.TextExtractor,
	cache driven.IndexCache,
	opts BuildOptions,
) *IndexBuilder {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = chunker.DefaultChunkSize
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &IndexBuilder{
		catalog:   catalog,
		extractor: extractor,
		cache:     cache,
		opts:      opts,
	}
}

// Current returns a ready index, building one if none exists or the
// existing one has outlived its TTL. While a rebuild is in flight,
// callers holding an expired snapshot keep using it rather than block.
func (b *IndexBuilder) Current(ctx context.Context) (*domain.Index, error) {
	b.mu.Lock()
	if b.current != nil && !b.current.Expired(time.Now()) {
		idx := b.current
		b.mu.Unlock()
		return idx, nil
	}

	// Stale snapshot plus a build already running: serve the snapshot.
	if b.inflight != nil && b.current != nil {
		idx := b.current
		b.mu.Unlock()
		return idx, nil
	}

	call := b.startBuildLocked(!b.dirty)
	b.mu.Unlock()

	return b.await(ctx, call)
}

// Build forces a rebuild, bypassing the cached index. Concurrent calls
// join the in-flight build.
func (b *IndexBuilder) Build(ctx context.Context) (*domain.Index, error) {
	b.mu.Lock()
	call := b.startBuildLocked(false)
	b.mu.Unlock()

	return b.await(ctx, call)
}

// Invalidate marks the current index stale so the next query rebuilds
// from the catalog, ignoring any cached index.
func (b *IndexBuilder) Invalidate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = nil
	b.dirty = true
	logger.Info("Index invalidated")
}

// Status reports the builder's current state.
func (b *IndexBuilder) Status() driving.BuildStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := driving.BuildStatus{
		Building:         b.inflight != nil,
		Ready:            b.current != nil,
		DocumentsIndexed: b.lastIndexed,
		DocumentsSkipped: b.lastSkipped,
	}
	if b.current != nil {
		st.Entries = len(b.current.Entries)
	}
	return st
}

// startBuildLocked returns the in-flight build, starting one if needed.
// Caller must hold b.mu.
func (b *IndexBuilder) startBuildLocked(useCache bool) *buildCall {
	if b.inflight != nil {
		return b.inflight
	}

	call := &buildCall{done: make(chan struct{})}
	b.inflight = call

	go func() {
		idx, err := b.build(context.Background(), useCache)

		b.mu.Lock()
		if err == nil {
			b.current = idx
			b.dirty = false
		}
		b.inflight = nil
		b.mu.Unlock()

		call.index = idx
		call.err = err
		close(call.done)
	}()

	return call
}

// await blocks until the build finishes or ctx is cancelled.
func (b *IndexBuilder) await(ctx context.Context, call *buildCall) (*domain.Index, error) {
	select {
	case <-call.done:
		return call.index, call.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// build produces a new index. When useCache is set and the cached index
// is still within its TTL, it is adopted without re-extracting anything.
func (b *IndexBuilder) build(ctx context.Context, useCache bool) (*domain.Index, error) {
	logger.Section("Index Build")

	if useCache && b.cache != nil {
		cached, err := b.cache.Load(ctx, SchemaVersion)
		if err == nil && !cached.Expired(time.Now()) {
			logger.Info("Reusing cached index: %d chunks, built %s",
				len(cached.Entries), cached.BuiltAt.Format(time.RFC3339))
			return cached, nil
		}
		if err == nil {
			logger.Debug("Cached index expired, rebuilding")
		}
	}

	docs, err := b.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	if b.opts.MaxDocuments > 0 && len(docs) > b.opts.MaxDocuments {
		docs = docs[:b.opts.MaxDocuments]
	}
	logger.Debug("Catalog: %d document(s) eligible", len(docs))

	texts := b.extractAll(ctx, docs)

	split := chunker.New(chunker.WithChunkSize(b.opts.ChunkSize))

	var entries []domain.Chunk
	indexed, skipped := 0, 0
	for i, doc := range docs {
		text := texts[i]
		if len(text) < b.opts.MinTextLength {
			if text != "" {
				logger.Debug("Skipping %q: only %d chars extracted", doc.Title, len(text))
			}
			skipped++
			continue
		}

		ordinal := 0
		for _, content := range split.Split(text) {
			if len(content) < b.opts.MinChunkLength {
				continue
			}
			entries = append(entries, domain.Chunk{
				ID:       fmt.Sprintf("%s_%d", doc.ID, ordinal),
				Title:    doc.Title,
				Category: doc.Category,
				Content:  content,
				Keywords: tokenizer.ExtractKeywords(content),
			})
			ordinal++
		}
		indexed++
	}

	idx := &domain.Index{
		Entries: entries,
		BuiltAt: time.Now(),
		TTL:     b.opts.TTL,
	}

	b.mu.Lock()
	b.lastIndexed = indexed
	b.lastSkipped = skipped
	b.mu.Unlock()

	logger.Info("Built index: %d chunks from %d document(s), %d skipped",
		len(entries), indexed, skipped)

	if b.cache != nil {
		if err := b.cache.Save(ctx, SchemaVersion, idx); err != nil {
			logger.Warn("Failed to cache index: %v", err)
		}
	}

	return idx, nil
}

// extractAll fetches text for every document, at most opts.Concurrency
// extractions in parallel. Results keep catalog order. A failed
// extraction leaves an empty string; the caller skips it.
func (b *IndexBuilder) extractAll(ctx context.Context, docs []domain.Document) []string {
	texts := make([]string, len(docs))

	sem := make(chan struct{}, b.opts.Concurrency)
	var wg sync.WaitGroup

	for i, doc := range docs {
		// Pass-through for sources that already carry text.
		if doc.RawText != "" {
			texts[i] = doc.RawText
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, doc domain.Document) {
			defer wg.Done()
			defer func() { <-sem }()

			text, err := b.extractor.Extract(ctx, doc, b.opts.MaxPagesPerDocument)
			if err != nil {
				logger.Warn("Skipping %q: %v", doc.Title, err)
				return
			}
			texts[i] = text
		}(i, doc)
	}

	wg.Wait()
	return texts
}
