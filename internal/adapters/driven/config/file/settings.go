// Package file provides TOML-based configuration for the Ilmify CLI.
// Settings are stored in a TOML file within the ilmify config directory
// and override the built-in defaults; deployments tune scoring weights,
// TTLs, and chunk sizes here instead of forking the code.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/services"
)

// Settings is the on-disk configuration schema.
type Settings struct {
	Catalog   CatalogSettings   `toml:"catalog"`
	Cache     CacheSettings     `toml:"cache"`
	Index     IndexSettings     `toml:"index"`
	Scoring   ScoringSettings   `toml:"scoring"`
	Synthesis SynthesisSettings `toml:"synthesis"`
	Remote    RemoteSettings    `toml:"remote"`
}

// CatalogSettings locates the resource catalog.
type CatalogSettings struct {
	// Path points at the generated metadata.json.
	Path string `toml:"path"`

	// Watch rebuilds the index when the catalog file changes.
	Watch bool `toml:"watch"`
}

// CacheSettings configures index persistence.
type CacheSettings struct {
	// Backend is "sqlite" or "memory".
	Backend string `toml:"backend"`

	// Dir is the data directory for the sqlite backend.
	Dir string `toml:"dir"`
}

// IndexSettings bounds index builds.
type IndexSettings struct {
	TTLMinutes          int `toml:"ttl_minutes"`
	ChunkSize           int `toml:"chunk_size"`
	MaxDocuments        int `toml:"max_documents"`
	MaxPagesPerDocument int `toml:"max_pages_per_document"`
	MinTextLength       int `toml:"min_text_length"`
	MinChunkLength      int `toml:"min_chunk_length"`
	Concurrency         int `toml:"concurrency"`
}

// ScoringSettings overrides the chunk scoring weights.
type ScoringSettings struct {
	KeywordExact     *float64 `toml:"keyword_exact"`
	KeywordSubstring *float64 `toml:"keyword_substring"`
	PhraseBonus      *float64 `toml:"phrase_bonus"`
	TitleKeyword     *float64 `toml:"title_keyword"`
	Floor            *float64 `toml:"floor"`
}

// SynthesisSettings overrides the answer synthesis constants.
type SynthesisSettings struct {
	MaxChunks    int `toml:"max_chunks"`
	MaxSentences int `toml:"max_sentences"`
}

// RemoteSettings configures the optional semantic-search service.
type RemoteSettings struct {
	// URL is the service base URL. Empty disables remote ranking.
	URL string `toml:"url"`

	// RatePerSecond limits requests to the service.
	RatePerSecond float64 `toml:"rate_per_second"`
}

// DefaultPath returns the default settings file location,
// ~/.ilmify/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ilmify", "config.toml"), nil
}

// Load reads settings from path. A missing file is not an error: the
// zero Settings means "all defaults".
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}

// BuildOptions merges the index settings over the defaults.
func (s *Settings) BuildOptions() services.BuildOptions {
	opts := services.DefaultBuildOptions()
	if s.Index.TTLMinutes > 0 {
		opts.TTL = time.Duration(s.Index.TTLMinutes) * time.Minute
	}
	if s.Index.ChunkSize > 0 {
		opts.ChunkSize = s.Index.ChunkSize
	}
	if s.Index.MaxDocuments > 0 {
		opts.MaxDocuments = s.Index.MaxDocuments
	}
	if s.Index.MaxPagesPerDocument > 0 {
		opts.MaxPagesPerDocument = s.Index.MaxPagesPerDocument
	}
	if s.Index.MinTextLength > 0 {
		opts.MinTextLength = s.Index.MinTextLength
	}
	if s.Index.MinChunkLength > 0 {
		opts.MinChunkLength = s.Index.MinChunkLength
	}
	if s.Index.Concurrency > 0 {
		opts.Concurrency = s.Index.Concurrency
	}
	return opts
}

// ScoringPolicy merges the scoring overrides over the defaults.
// Pointer fields distinguish "unset" from an explicit zero, which
// matters for the floor.
func (s *Settings) ScoringPolicy() domain.ScoringPolicy {
	policy := domain.DefaultScoringPolicy()
	if v := s.Scoring.KeywordExact; v != nil {
		policy.KeywordExact = *v
	}
	if v := s.Scoring.KeywordSubstring; v != nil {
		policy.KeywordSubstring = *v
	}
	if v := s.Scoring.PhraseBonus; v != nil {
		policy.PhraseBonus = *v
	}
	if v := s.Scoring.TitleKeyword; v != nil {
		policy.TitleKeyword = *v
	}
	if v := s.Scoring.Floor; v != nil {
		policy.Floor = *v
	}
	return policy
}

// SynthesisPolicy merges the synthesis overrides over the defaults.
func (s *Settings) SynthesisPolicy() domain.SynthesisPolicy {
	policy := domain.DefaultSynthesisPolicy()
	if s.Synthesis.MaxChunks > 0 {
		policy.MaxChunks = s.Synthesis.MaxChunks
	}
	if s.Synthesis.MaxSentences > 0 {
		policy.MaxSentences = s.Synthesis.MaxSentences
	}
	return policy
}
