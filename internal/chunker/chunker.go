// Package chunker splits document text into bounded-size passages on
// sentence boundaries, preserving reading order.
package chunker

import (
	"regexp"
	"strings"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 500

// sentenceSep matches runs of sentence terminators. The danda (U+0964)
// is included so Urdu/Hindi textbook text splits correctly.
var sentenceSep = regexp.MustCompile(`[.!?\x{0964}]+`)

// sentenceToken matches one sentence together with its trailing
// terminators, so chunks keep their punctuation.
var sentenceToken = regexp.MustCompile(`[^.!?\x{0964}]+[.!?\x{0964}]*`)

// Splitter accumulates sentences into chunks of bounded size.
type Splitter struct {
	chunkSize int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChunkSize returns the configured size bound.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Split breaks text into sentence-aligned chunks. A chunk is flushed
// when appending the next sentence would exceed the size bound and the
// buffer is non-empty; a single sentence longer than the bound is
// emitted whole rather than truncated mid-sentence. Sentences keep
// their terminators so chunk content reads as natural text. Empty
// input yields no chunks. No sentence is dropped or duplicated.
func (s *Splitter) Split(text string) []string {
	var chunks []string
	var buf strings.Builder

	for _, sentence := range sentencesWithSeparators(text) {
		if buf.Len() > 0 && buf.Len()+len(sentence) > s.chunkSize {
			chunks = append(chunks, strings.TrimSpace(buf.String()))
			buf.Reset()
			buf.WriteString(sentence)
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(sentence)
	}

	if rest := strings.TrimSpace(buf.String()); rest != "" {
		chunks = append(chunks, rest)
	}
	return chunks
}

// SplitSentences splits text on sentence terminators (. ! ? and the
// danda), collapsing consecutive separators and dropping empty
// fragments. The synthesizer uses the same separator set so answers
// align with indexed chunk boundaries.
func SplitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceSep.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sentences = append(sentences, part)
	}
	return sentences
}

// sentencesWithSeparators splits like SplitSentences but keeps each
// sentence's trailing terminators.
func sentencesWithSeparators(text string) []string {
	var sentences []string
	for _, match := range sentenceToken.FindAllString(text, -1) {
		match = strings.TrimSpace(match)
		if match == "" || sentenceSep.ReplaceAllString(match, "") == "" {
			continue
		}
		sentences = append(sentences, match)
	}
	return sentences
}
