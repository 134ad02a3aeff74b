package domain

// ScoringPolicy holds the weights and floors of the chunk scoring
// heuristic. The portal's chatbot variants shipped with diverging
// constants; keeping them in one tunable policy avoids forked logic.
type ScoringPolicy struct {
	// KeywordExact is awarded per query keyword present in the chunk's
	// keyword set.
	KeywordExact float64

	// KeywordSubstring is awarded per query keyword contained anywhere
	// in the lowercased chunk content. Weaker than an exact match but
	// catches compounds ("waterborne" for "water").
	KeywordSubstring float64

	// PhraseBonus is awarded once per chunk when the chunk content
	// contains the entire lowercased query as a contiguous substring.
	PhraseBonus float64

	// TitleKeyword is awarded per query keyword present in the chunk's
	// title. Titles outrank body text.
	TitleKeyword float64

	// Floor is the minimum score a chunk must exceed to be returned.
	Floor float64
}

// SynthesisPolicy holds the sentence selection constants of the
// answer synthesizer.
type SynthesisPolicy struct {
	// MaxChunks is how many ranked chunks contribute sentences.
	MaxChunks int

	// MaxSentences caps the synthesized answer length.
	MaxSentences int

	// MinSentenceLength discards fragments below this many characters.
	MinSentenceLength int

	// KeywordWeight is awarded per query keyword a sentence contains.
	KeywordWeight float64

	// PhraseWeight is awarded when a sentence contains the query verbatim.
	PhraseWeight float64

	// DefinitionWeight is awarded when a definition-style question meets
	// a sentence with a definitional verb.
	DefinitionWeight float64

	// LengthBonus rewards informative sentences (> 50 chars) that are
	// already scoring.
	LengthBonus float64

	// RelevanceFloor is the score a sentence must exceed to be selected.
	// When nothing qualifies, the leading sentences of the combined
	// content are used instead.
	RelevanceFloor float64
}

// DefaultScoringPolicy returns the canonical scoring weights.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		KeywordExact:     2,
		KeywordSubstring: 1,
		PhraseBonus:      8,
		TitleKeyword:     3,
		Floor:            0,
	}
}

// DefaultSynthesisPolicy returns the canonical synthesis constants.
func DefaultSynthesisPolicy() SynthesisPolicy {
	return SynthesisPolicy{
		MaxChunks:         3,
		MaxSentences:      4,
		MinSentenceLength: 20,
		KeywordWeight:     2,
		PhraseWeight:      10,
		DefinitionWeight:  3,
		LengthBonus:       1,
		RelevanceFloor:    1,
	}
}
