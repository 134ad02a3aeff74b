package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driven"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driving"
	"github.com/ilmify/ilmify-cli/internal/logger"
	"github.com/ilmify/ilmify-cli/internal/tokenizer"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultTopK is the result count when the caller passes none.
const DefaultTopK = 5

// indexProvider supplies a ready index snapshot.
type indexProvider interface {
	Current(ctx context.Context) (*domain.Index, error)
}

// SearchService ranks indexed chunks against a query using a
// multi-signal additive heuristic. This is intentionally not TF-IDF:
// the corpus is a handful of documents, so corpus-frequency discounting
// buys nothing, and recall matters more than precision here.
type SearchService struct {
	index  indexProvider
	remote driven.RemoteRanker // optional
	policy domain.ScoringPolicy
}

// NewSearchService creates a search service.
// The remote ranker is optional (can be nil).
func NewSearchService(index indexProvider, remote driven.RemoteRanker, policy domain.ScoringPolicy) *SearchService {
	return &SearchService{
		index:  index,
		remote: remote,
		policy: policy,
	}
}

// Search returns at most topK chunks sorted by non-increasing score.
//
// When a remote ranker is configured and returns at least one result,
// its ranking supersedes the local scorer. On any remote failure the
// local scorer answers transparently; remote errors never propagate.
func (s *SearchService) Search(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if topK <= 0 {
		topK = DefaultTopK
	}

	keywords := tokenizer.ExtractOrdered(query)
	if len(keywords) == 0 {
		logger.Debug("No content keywords, returning no results")
		return []domain.ScoredChunk{}, nil
	}
	logger.Debug("Keywords: %v", keywords)

	if s.remote != nil {
		results, err := s.remote.Rank(ctx, query, topK)
		if err == nil && len(results) > 0 {
			logger.Info("Remote ranking served %d result(s)", len(results))
			return results, nil
		}
		if err != nil {
			logger.Warn("Remote ranking unavailable, falling back to local scorer: %v", err)
		}
	}

	idx, err := s.index.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("get index: %w", err)
	}

	results := rankChunks(idx, query, keywords, topK, s.policy)
	logger.Debug("Local scorer: %d result(s)", len(results))
	return results, nil
}

// rankChunks scores every chunk in the index against the query and
// returns the topK, best first. Ties keep index order (first-seen wins).
func rankChunks(
	idx *domain.Index,
	query string,
	keywords []string,
	topK int,
	policy domain.ScoringPolicy,
) []domain.ScoredChunk {
	queryLower := strings.ToLower(query)

	results := make([]domain.ScoredChunk, 0, topK)
	for i := range idx.Entries {
		chunk := &idx.Entries[i]
		score := scoreChunk(chunk, queryLower, keywords, policy)
		if score <= policy.Floor {
			continue
		}
		results = append(results, domain.ScoredChunk{Chunk: *chunk, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// scoreChunk computes the additive relevance score of one chunk.
// Signals, strongest first: whole-query phrase in the content (once),
// keyword in the title, keyword in the chunk's keyword set, keyword as
// a bare substring of the content.
func scoreChunk(chunk *domain.Chunk, queryLower string, keywords []string, policy domain.ScoringPolicy) float64 {
	contentLower := strings.ToLower(chunk.Content)
	titleLower := strings.ToLower(chunk.Title)

	var score float64
	for _, kw := range keywords {
		if chunk.HasKeyword(kw) {
			score += policy.KeywordExact
		} else if strings.Contains(contentLower, kw) {
			score += policy.KeywordSubstring
		}
		if strings.Contains(titleLower, kw) {
			score += policy.TitleKeyword
		}
	}

	if strings.Contains(contentLower, queryLower) {
		score += policy.PhraseBonus
	}

	return score
}
