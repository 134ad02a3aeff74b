package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/services"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_MissingFileMeansDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, services.DefaultBuildOptions(), s.BuildOptions())
	assert.Equal(t, domain.DefaultScoringPolicy(), s.ScoringPolicy())
	assert.Equal(t, domain.DefaultSynthesisPolicy(), s.SynthesisPolicy())
}

func TestLoad_ParsesSettings(t *testing.T) {
	path := writeSettings(t, `
[catalog]
path = "/srv/content/metadata.json"
watch = true

[cache]
backend = "sqlite"
dir = "/srv/content/data"

[index]
ttl_minutes = 30
chunk_size = 300
max_documents = 10

[remote]
url = "http://192.168.4.1:8080"
rate_per_second = 2.0
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/content/metadata.json", s.Catalog.Path)
	assert.True(t, s.Catalog.Watch)
	assert.Equal(t, "sqlite", s.Cache.Backend)
	assert.Equal(t, "http://192.168.4.1:8080", s.Remote.URL)
	assert.Equal(t, 2.0, s.Remote.RatePerSecond)

	opts := s.BuildOptions()
	assert.Equal(t, 30*time.Minute, opts.TTL)
	assert.Equal(t, 300, opts.ChunkSize)
	assert.Equal(t, 10, opts.MaxDocuments)

	// Unset fields keep their defaults.
	defaults := services.DefaultBuildOptions()
	assert.Equal(t, defaults.MaxPagesPerDocument, opts.MaxPagesPerDocument)
	assert.Equal(t, defaults.Concurrency, opts.Concurrency)
}

func TestScoringPolicy_Overrides(t *testing.T) {
	path := writeSettings(t, `
[scoring]
keyword_exact = 5.0
floor = 0.0
`)

	s, err := Load(path)
	require.NoError(t, err)

	policy := s.ScoringPolicy()
	assert.Equal(t, 5.0, policy.KeywordExact)
	assert.Equal(t, 0.0, policy.Floor)

	// Unset weights keep their defaults.
	defaults := domain.DefaultScoringPolicy()
	assert.Equal(t, defaults.KeywordSubstring, policy.KeywordSubstring)
	assert.Equal(t, defaults.PhraseBonus, policy.PhraseBonus)
}

func TestSynthesisPolicy_Overrides(t *testing.T) {
	path := writeSettings(t, `
[synthesis]
max_sentences = 2
`)

	s, err := Load(path)
	require.NoError(t, err)

	policy := s.SynthesisPolicy()
	assert.Equal(t, 2, policy.MaxSentences)
	assert.Equal(t, domain.DefaultSynthesisPolicy().MaxChunks, policy.MaxChunks)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeSettings(t, `[index`)

	_, err := Load(path)
	assert.Error(t, err)
}
