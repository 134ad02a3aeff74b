package services

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/ilmify/ilmify-cli/internal/chunker"
	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driving"
	"github.com/ilmify/ilmify-cli/internal/logger"
	"github.com/ilmify/ilmify-cli/internal/tokenizer"
)

// Ensure AnswerService implements the interface.
var _ driving.AskService = (*AnswerService)(nil)

// fallbackSentences is how many leading sentences stand in for an
// answer when no sentence clears the relevance floor.
const fallbackSentences = 3

var (
	definitionQuery = regexp.MustCompile(`(?i)\b(what is|definition|meaning|explain)\b`)
	definitionVerb  = regexp.MustCompile(`(?i)\b(is|are|means|refers to|defined as)\b`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// searcher ranks chunks for a query.
type searcher interface {
	Search(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error)
}

// AnswerService builds extractive answers from ranked chunks.
type AnswerService struct {
	search searcher
	policy domain.SynthesisPolicy
}

// NewAnswerService creates an answer service.
func NewAnswerService(search searcher, policy domain.SynthesisPolicy) *AnswerService {
	return &AnswerService{
		search: search,
		policy: policy,
	}
}

// Ask runs the full pipeline for one query and returns an extractive
// answer with cited sources. Returns domain.ErrNoMatch when nothing in
// the index is relevant; the host renders its own fallback message.
func (a *AnswerService) Ask(ctx context.Context, query string) (*domain.Answer, error) {
	ranked, err := a.search.Search(ctx, query, DefaultTopK)
	if err != nil {
		return nil, err
	}

	answer := Synthesize(query, ranked, a.policy)
	if answer == nil {
		return nil, domain.ErrNoMatch
	}
	return answer, nil
}

// Synthesize assembles an extractive answer from the top-ranked chunks.
// It returns nil if and only if ranked is empty: whenever a context
// exists, some answer is produced, falling back to the leading
// sentences when nothing scores well.
func Synthesize(query string, ranked []domain.ScoredChunk, policy domain.SynthesisPolicy) *domain.Answer {
	if len(ranked) == 0 {
		return nil
	}

	top := ranked
	if len(top) > policy.MaxChunks {
		top = top[:policy.MaxChunks]
	}

	contents := make([]string, 0, len(top))
	for _, sc := range top {
		contents = append(contents, sc.Chunk.Content)
	}
	combined := strings.Join(contents, " ")

	selected := selectSentences(query, combined, policy)
	logger.Debug("Synthesizer selected %d sentence(s)", len(selected))

	text := strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.Join(selected, ". "), " "))
	if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
		text += "."
	}

	return &domain.Answer{
		Text:     text,
		Sources:  sourceTitles(top),
		Category: top[0].Chunk.Category,
		Score:    top[0].Score,
	}
}

// scoredSentence keeps a sentence with its relevance score and
// original position for stable ordering.
type scoredSentence struct {
	text     string
	score    float64
	position int
}

// selectSentences picks the best sentences of the combined content.
// When none clears the relevance floor, the leading sentences are
// returned in original order so an answer always exists.
func selectSentences(query, combined string, policy domain.SynthesisPolicy) []string {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	keywords := tokenizer.ExtractOrdered(query)
	isDefinition := definitionQuery.MatchString(query)

	var sentences []scoredSentence
	for i, sentence := range chunker.SplitSentences(combined) {
		if len(sentence) <= policy.MinSentenceLength {
			continue
		}
		sentences = append(sentences, scoredSentence{
			text:     sentence,
			score:    scoreSentence(sentence, queryLower, keywords, isDefinition, policy),
			position: i,
		})
	}

	var relevant []scoredSentence
	for _, s := range sentences {
		if s.score > policy.RelevanceFloor {
			relevant = append(relevant, s)
		}
	}

	if len(relevant) == 0 {
		// Nothing scored: fall back to the opening sentences.
		n := fallbackSentences
		if n > len(sentences) {
			n = len(sentences)
		}
		out := make([]string, 0, n)
		for _, s := range sentences[:n] {
			out = append(out, s.text)
		}
		return out
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].score > relevant[j].score
	})
	if len(relevant) > policy.MaxSentences {
		relevant = relevant[:policy.MaxSentences]
	}

	out := make([]string, 0, len(relevant))
	for _, s := range relevant {
		out = append(out, s.text)
	}
	return out
}

// scoreSentence rates one sentence's relevance to the query.
func scoreSentence(sentence, queryLower string, keywords []string, isDefinition bool, policy domain.SynthesisPolicy) float64 {
	sentenceLower := strings.ToLower(sentence)

	var score float64
	for _, kw := range keywords {
		if strings.Contains(sentenceLower, kw) {
			score += policy.KeywordWeight
		}
	}

	if queryLower != "" && strings.Contains(sentenceLower, queryLower) {
		score += policy.PhraseWeight
	}

	if isDefinition && definitionVerb.MatchString(sentence) {
		score += policy.DefinitionWeight
	}

	// Informativeness bonus only for sentences that already match.
	if score > 0 && len(sentence) > 50 {
		score += policy.LengthBonus
	}

	return score
}

// sourceTitles returns the distinct titles of the contributing chunks,
// in rank order.
func sourceTitles(chunks []domain.ScoredChunk) []string {
	seen := make(map[string]struct{}, len(chunks))
	var titles []string
	for _, sc := range chunks {
		if _, ok := seen[sc.Chunk.Title]; ok {
			continue
		}
		seen[sc.Chunk.Title] = struct{}{}
		titles = append(titles, sc.Chunk.Title)
	}
	return titles
}
