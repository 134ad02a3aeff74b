// Package tokenizer extracts content-bearing keywords from text.
//
// A keyword is a lowercase token that survives punctuation stripping,
// a minimum-length filter, a stop-word filter, and a pure-digit filter.
// Extraction is deterministic and pure: the same text always yields the
// same keyword set.
package tokenizer

import (
	"regexp"
	"strings"
)

// MinTokenLength is the shortest token kept as a keyword.
// Tokens of this length or shorter carry no retrieval signal.
const MinTokenLength = 3

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]+`)

// ExtractKeywords returns the set of keywords in text.
// Empty or punctuation-only input yields an empty, non-nil set.
func ExtractKeywords(text string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, tok := range tokens(text) {
		keywords[tok] = struct{}{}
	}
	return keywords
}

// ExtractOrdered returns the keywords of text in first-seen order,
// without duplicates. Scoring iterates this form so that results are
// reproducible across runs.
func ExtractOrdered(text string) []string {
	seen := make(map[string]struct{})
	var ordered []string
	for _, tok := range tokens(text) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		ordered = append(ordered, tok)
	}
	return ordered
}

// tokens lowercases text, replaces everything outside [a-z0-9] and
// whitespace with a space, splits on whitespace, and applies the
// length, stop-word, and digit filters.
func tokens(text string) []string {
	cleaned := nonAlnum.ReplaceAllString(strings.ToLower(text), " ")

	var out []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < MinTokenLength {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if allDigits(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
