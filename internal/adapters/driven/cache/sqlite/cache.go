// Package sqlite provides a durable index cache backed by SQLite.
//
// One row per schema version keeps the serialized chunk payload plus
// build metadata, so a restarted session can reuse an index that is
// still within its TTL without re-extracting any document.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.IndexCache = (*Cache)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS index_cache (
    schema_version TEXT PRIMARY KEY,
    built_at       INTEGER NOT NULL,
    ttl_seconds    INTEGER NOT NULL,
    payload        BLOB    NOT NULL
);`

// Cache is a SQLite-backed implementation of driven.IndexCache.
type Cache struct {
	db   *sql.DB
	path string
}

// NewCache opens (or creates) the cache database in dataDir.
// If dataDir is empty, defaults to ~/.ilmify/data.
func NewCache(dataDir string) (*Cache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ilmify", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// WAL mode so a build can write while a query session reads.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}

// chunkRecord is the serialized form of a chunk. Keywords are stored as
// a sorted list; the set form is rebuilt on load.
type chunkRecord struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

// Load returns the cached index for the schema version.
func (c *Cache) Load(ctx context.Context, schemaVersion string) (*domain.Index, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT built_at, ttl_seconds, payload FROM index_cache WHERE schema_version = ?`,
		schemaVersion)

	var builtAt, ttlSeconds int64
	var payload []byte
	if err := row.Scan(&builtAt, &ttlSeconds, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("loading index cache: %w", err)
	}

	var records []chunkRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decoding index payload: %w", err)
	}

	entries := make([]domain.Chunk, 0, len(records))
	for _, rec := range records {
		keywords := make(map[string]struct{}, len(rec.Keywords))
		for _, kw := range rec.Keywords {
			keywords[kw] = struct{}{}
		}
		entries = append(entries, domain.Chunk{
			ID:       rec.ID,
			Title:    rec.Title,
			Category: domain.Category(rec.Category),
			Content:  rec.Content,
			Keywords: keywords,
		})
	}

	return &domain.Index{
		Entries: entries,
		BuiltAt: time.Unix(builtAt, 0),
		TTL:     time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Save stores the index under the schema version, replacing any
// previous entry.
func (c *Cache) Save(ctx context.Context, schemaVersion string, index *domain.Index) error {
	if index == nil {
		return domain.ErrInvalidInput
	}

	records := make([]chunkRecord, 0, len(index.Entries))
	for _, chunk := range index.Entries {
		keywords := make([]string, 0, len(chunk.Keywords))
		for kw := range chunk.Keywords {
			keywords = append(keywords, kw)
		}
		sort.Strings(keywords)
		records = append(records, chunkRecord{
			ID:       chunk.ID,
			Title:    chunk.Title,
			Category: chunk.Category.String(),
			Content:  chunk.Content,
			Keywords: keywords,
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding index payload: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO index_cache (schema_version, built_at, ttl_seconds, payload)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(schema_version) DO UPDATE SET
		   built_at = excluded.built_at,
		   ttl_seconds = excluded.ttl_seconds,
		   payload = excluded.payload`,
		schemaVersion, index.BuiltAt.Unix(), int64(index.TTL/time.Second), payload)
	if err != nil {
		return fmt.Errorf("saving index cache: %w", err)
	}
	return nil
}
