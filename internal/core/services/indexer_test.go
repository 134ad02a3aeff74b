package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockCatalog implements driven.Catalog for testing.
type mockCatalog struct {
	docs    []domain.Document
	listErr error
}

func (m *mockCatalog) List(_ context.Context) ([]domain.Document, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.docs, nil
}

// mockExtractor implements driven.TextExtractor for testing.
// It counts calls so cache-reuse tests can verify extraction is skipped.
type mockExtractor struct {
	mu    sync.Mutex
	texts map[string]string // document ID -> text
	errs  map[string]error  // document ID -> extraction failure
	calls int
	delay time.Duration
}

func (m *mockExtractor) Extract(_ context.Context, doc domain.Document, _ int) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	if err, ok := m.errs[doc.ID]; ok {
		return "", err
	}
	return m.texts[doc.ID], nil
}

func (m *mockExtractor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockIndexCache implements driven.IndexCache for testing.
type mockIndexCache struct {
	mu      sync.Mutex
	stored  map[string]*domain.Index
	saveErr error
}

func newMockIndexCache() *mockIndexCache {
	return &mockIndexCache{stored: make(map[string]*domain.Index)}
}

func (m *mockIndexCache) Load(_ context.Context, schemaVersion string) (*domain.Index, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, ok := m.stored[schemaVersion]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return idx, nil
}

func (m *mockIndexCache) Save(_ context.Context, schemaVersion string, index *domain.Index) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored[schemaVersion] = index
	return nil
}

// --- Fixtures ---

const waterText = "Water is essential for life. Plants need water to grow. " +
	"The water cycle includes evaporation and condensation."

func testBuildOptions() BuildOptions {
	return BuildOptions{
		MaxDocuments:        25,
		MaxPagesPerDocument: 50,
		ChunkSize:           200,
		MinTextLength:       10,
		MinChunkLength:      0,
		Concurrency:         2,
		TTL:                 time.Hour,
	}
}

func waterDoc() domain.Document {
	return domain.Document{
		ID:       "science-9",
		Title:    "Science Class 9",
		Category: domain.CategoryTextbook,
		Format:   "pdf",
	}
}

// --- Tests ---

func TestIndexBuilder_BuildFromCatalog(t *testing.T) {
	catalog := &mockCatalog{docs: []domain.Document{waterDoc()}}
	extractor := &mockExtractor{texts: map[string]string{"science-9": waterText}}

	b := NewIndexBuilder(catalog, extractor, nil, testBuildOptions())
	idx, err := b.Current(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, idx.Entries)

	first := idx.Entries[0]
	assert.Equal(t, "science-9_0", first.ID)
	assert.Equal(t, "Science Class 9", first.Title)
	assert.Equal(t, domain.CategoryTextbook, first.Category)
	assert.True(t, first.HasKeyword("water"))
	assert.True(t, first.HasKeyword("evaporation"))
}

func TestIndexBuilder_ChunkIDsAreOrdinal(t *testing.T) {
	// Small chunk size forces one chunk per sentence.
	opts := testBuildOptions()
	opts.ChunkSize = 30

	catalog := &mockCatalog{docs: []domain.Document{waterDoc()}}
	extractor := &mockExtractor{texts: map[string]string{"science-9": waterText}}

	b := NewIndexBuilder(catalog, extractor, nil, opts)
	idx, err := b.Current(context.Background())
	require.NoError(t, err)
	require.Greater(t, len(idx.Entries), 1)

	for i, chunk := range idx.Entries {
		assert.Equalf(t, "science-9_"+string(rune('0'+i)), chunk.ID, "chunk %d", i)
	}
}

func TestIndexBuilder_SkipsFailedExtractions(t *testing.T) {
	catalog := &mockCatalog{docs: []domain.Document{
		{ID: "bad", Title: "Corrupt Scan", Format: "pdf"},
		waterDoc(),
	}}
	extractor := &mockExtractor{
		texts: map[string]string{"science-9": waterText},
		errs:  map[string]error{"bad": domain.ErrDocumentUnavailable},
	}

	b := NewIndexBuilder(catalog, extractor, nil, testBuildOptions())
	idx, err := b.Current(context.Background())
	require.NoError(t, err, "a single bad document must not fail the build")

	for _, chunk := range idx.Entries {
		assert.NotEqual(t, "Corrupt Scan", chunk.Title)
	}

	st := b.Status()
	assert.Equal(t, 1, st.DocumentsIndexed)
	assert.Equal(t, 1, st.DocumentsSkipped)
}

func TestIndexBuilder_SkipsShortText(t *testing.T) {
	opts := testBuildOptions()
	opts.MinTextLength = 150

	catalog := &mockCatalog{docs: []domain.Document{
		{ID: "stub", Title: "Nearly Empty", Format: "pdf"},
	}}
	extractor := &mockExtractor{texts: map[string]string{"stub": "Too short."}}

	b := NewIndexBuilder(catalog, extractor, nil, opts)
	idx, err := b.Current(context.Background())
	require.NoError(t, err)
	assert.Empty(t, idx.Entries)
	assert.Equal(t, 1, b.Status().DocumentsSkipped)
}

func TestIndexBuilder_RawTextPassThrough(t *testing.T) {
	catalog := &mockCatalog{docs: []domain.Document{{
		ID:       "notes",
		Title:    "Teacher Notes",
		Category: domain.CategoryOther,
		RawText:  waterText,
	}}}
	extractor := &mockExtractor{}

	b := NewIndexBuilder(catalog, extractor, nil, testBuildOptions())
	idx, err := b.Current(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, idx.Entries)
	assert.Zero(t, extractor.callCount(), "pre-extracted text must not invoke the extractor")
}

func TestIndexBuilder_MaxDocumentsBound(t *testing.T) {
	opts := testBuildOptions()
	opts.MaxDocuments = 1

	catalog := &mockCatalog{docs: []domain.Document{
		{ID: "a", Title: "First", RawText: waterText},
		{ID: "b", Title: "Second", RawText: waterText},
	}}

	b := NewIndexBuilder(catalog, &mockExtractor{}, nil, opts)
	idx, err := b.Current(context.Background())
	require.NoError(t, err)

	for _, chunk := range idx.Entries {
		assert.Equal(t, "First", chunk.Title, "only the first document should be indexed")
	}
}

func TestIndexBuilder_FreshCacheSkipsExtraction(t *testing.T) {
	catalog := &mockCatalog{docs: []domain.Document{waterDoc()}}
	extractor := &mockExtractor{texts: map[string]string{"science-9": waterText}}

	cache := newMockIndexCache()
	cache.stored[SchemaVersion] = &domain.Index{
		Entries: []domain.Chunk{{ID: "cached_0", Title: "Cached", Content: waterText}},
		BuiltAt: time.Now().Add(-5 * time.Minute),
		TTL:     time.Hour,
	}

	b := NewIndexBuilder(catalog, extractor, cache, testBuildOptions())
	idx, err := b.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "cached_0", idx.Entries[0].ID)
	assert.Zero(t, extractor.callCount(), "fresh cache must be reused without extraction")
}

func TestIndexBuilder_ExpiredCacheTriggersRebuild(t *testing.T) {
	catalog := &mockCatalog{docs: []domain.Document{waterDoc()}}
	extractor := &mockExtractor{texts: map[string]string{"science-9": waterText}}

	cache := newMockIndexCache()
	cache.stored[SchemaVersion] = &domain.Index{
		Entries: []domain.Chunk{{ID: "cached_0", Title: "Cached", Content: waterText}},
		BuiltAt: time.Now().Add(-3 * time.Hour),
		TTL:     time.Hour,
	}

	b := NewIndexBuilder(catalog, extractor, cache, testBuildOptions())
	idx, err := b.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "science-9_0", idx.Entries[0].ID)
	assert.Equal(t, 1, extractor.callCount(), "expired cache must trigger one rebuild")

	// The rebuild replaces the cached entry.
	saved := cache.stored[SchemaVersion]
	require.NotNil(t, saved)
	assert.Equal(t, "science-9_0", saved.Entries[0].ID)
}

func TestIndexBuilder_SingleFlight(t *testing.T) {
	catalog := &mockCatalog{docs: []domain.Document{waterDoc()}}
	extractor := &mockExtractor{
		texts: map[string]string{"science-9": waterText},
		delay: 50 * time.Millisecond,
	}

	b := NewIndexBuilder(catalog, extractor, nil, testBuildOptions())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			idx, err := b.Current(context.Background())
			assert.NoError(t, err)
			assert.NotNil(t, idx)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, extractor.callCount(),
		"concurrent callers must share one in-flight build")
}

func TestIndexBuilder_InvalidateForcesRebuild(t *testing.T) {
	catalog := &mockCatalog{docs: []domain.Document{waterDoc()}}
	extractor := &mockExtractor{texts: map[string]string{"science-9": waterText}}

	b := NewIndexBuilder(catalog, extractor, nil, testBuildOptions())

	_, err := b.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, extractor.callCount())

	// Fresh index is reused without building.
	_, err = b.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, extractor.callCount())

	b.Invalidate()
	_, err = b.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, extractor.callCount())
}

func TestIndexBuilder_InvalidateBypassesCache(t *testing.T) {
	catalog := &mockCatalog{docs: []domain.Document{waterDoc()}}
	extractor := &mockExtractor{texts: map[string]string{"science-9": waterText}}

	cache := newMockIndexCache()
	cache.stored[SchemaVersion] = &domain.Index{
		Entries: []domain.Chunk{{ID: "cached_0", Title: "Cached", Content: waterText}},
		BuiltAt: time.Now(),
		TTL:     time.Hour,
	}

	b := NewIndexBuilder(catalog, extractor, cache, testBuildOptions())
	b.Invalidate()

	// A catalog change must win over a still-fresh cached index.
	idx, err := b.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "science-9_0", idx.Entries[0].ID)
	assert.Equal(t, 1, extractor.callCount())
}

func TestIndexBuilder_CatalogError(t *testing.T) {
	catalog := &mockCatalog{listErr: errors.New("disk gone")}

	b := NewIndexBuilder(catalog, &mockExtractor{}, nil, testBuildOptions())
	_, err := b.Current(context.Background())
	assert.Error(t, err)
}

func TestIndexBuilder_EmptyCatalog(t *testing.T) {
	b := NewIndexBuilder(&mockCatalog{}, &mockExtractor{}, nil, testBuildOptions())

	idx, err := b.Current(context.Background())
	require.NoError(t, err)
	assert.Empty(t, idx.Entries)

	st := b.Status()
	assert.True(t, st.Ready)
	assert.Zero(t, st.Entries)
}
