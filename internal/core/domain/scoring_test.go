package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaultScoringPolicy tests the canonical weights.
func TestDefaultScoringPolicy(t *testing.T) {
	p := DefaultScoringPolicy()

	assert.Equal(t, float64(2), p.KeywordExact)
	assert.Equal(t, float64(1), p.KeywordSubstring)
	assert.Equal(t, float64(8), p.PhraseBonus)
	assert.Equal(t, float64(3), p.TitleKeyword)
	assert.Equal(t, float64(0), p.Floor)

	// Exact matches must outrank bare substrings, and the phrase bonus
	// must dominate any single keyword signal.
	assert.Greater(t, p.KeywordExact, p.KeywordSubstring)
	assert.Greater(t, p.PhraseBonus, p.TitleKeyword)
}

// TestDefaultSynthesisPolicy tests the canonical synthesis constants.
func TestDefaultSynthesisPolicy(t *testing.T) {
	p := DefaultSynthesisPolicy()

	assert.Equal(t, 3, p.MaxChunks)
	assert.Equal(t, 4, p.MaxSentences)
	assert.Equal(t, 20, p.MinSentenceLength)
	assert.Equal(t, float64(10), p.PhraseWeight)
	assert.Equal(t, float64(1), p.RelevanceFloor)
}
