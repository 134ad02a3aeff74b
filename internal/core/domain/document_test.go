package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestIndex_Expired tests TTL expiry checks.
func TestIndex_Expired(t *testing.T) {
	now := time.Now()

	t.Run("nil index is expired", func(t *testing.T) {
		var ix *Index
		assert.True(t, ix.Expired(now))
	})

	t.Run("fresh index", func(t *testing.T) {
		ix := &Index{BuiltAt: now.Add(-30 * time.Minute), TTL: time.Hour}
		assert.False(t, ix.Expired(now))
	})

	t.Run("expired index", func(t *testing.T) {
		ix := &Index{BuiltAt: now.Add(-2 * time.Hour), TTL: time.Hour}
		assert.True(t, ix.Expired(now))
	})

	t.Run("zero TTL never expires", func(t *testing.T) {
		ix := &Index{BuiltAt: now.Add(-1000 * time.Hour), TTL: 0}
		assert.False(t, ix.Expired(now))
	})
}

// TestChunk_HasKeyword tests keyword set membership.
func TestChunk_HasKeyword(t *testing.T) {
	c := Chunk{Keywords: map[string]struct{}{"water": {}, "cycle": {}}}

	assert.True(t, c.HasKeyword("water"))
	assert.False(t, c.HasKeyword("chlorophyll"))
}

// TestCategory_String tests category representation.
func TestCategory_String(t *testing.T) {
	assert.Equal(t, "textbooks", CategoryTextbook.String())
	assert.Equal(t, "health-guides", CategoryHealthGuide.String())
	assert.Equal(t, "videos", CategoryVideo.String())
	assert.Equal(t, "uncategorized", CategoryOther.String())
}
