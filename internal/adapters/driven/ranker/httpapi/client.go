// Package httpapi provides a client for the optional semantic-search
// service. When the service is reachable and returns results, its
// ranking supersedes the local keyword scorer; any failure falls back
// to local scoring, never to a user-visible error.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driven"
	"github.com/ilmify/ilmify-cli/internal/tokenizer"
)

// Ensure Client implements the interface.
var _ driven.RemoteRanker = (*Client)(nil)

// DefaultTimeout bounds one ranking request. The remote service runs
// on the same LAN; anything slower is as good as down.
const DefaultTimeout = 3 * time.Second

// DefaultRate limits requests per second to the service, which shares
// the hotspot device with the content server.
const DefaultRate = 5

// rankRequest is the wire format of a ranking request.
type rankRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// rankResponse is the wire format of a ranking response.
type rankResponse struct {
	Results []rankResult `json:"results"`
}

type rankResult struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Content  string  `json:"content"`
	Score    float64 `json:"score"`
}

// Client calls the semantic-search HTTP endpoint.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithRate sets the request rate limit per second.
func WithRate(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// NewClient creates a ranking client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRate), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rank asks the remote service for the topK chunks matching query.
// Every failure mode maps to domain.ErrRemoteUnavailable so the caller
// can fall back to local scoring with a single errors.Is check.
func (c *Client) Rank(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}

	body, err := json.Marshal(rankRequest{Query: query, TopK: topK})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", domain.ErrRemoteUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/semantic-search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	}

	var decoded rankResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrRemoteUnavailable, err)
	}

	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("%w: empty result set", domain.ErrRemoteUnavailable)
	}

	results := make([]domain.ScoredChunk, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, domain.ScoredChunk{
			Chunk: domain.Chunk{
				ID:       r.ID,
				Title:    r.Title,
				Category: domain.Category(r.Category),
				Content:  r.Content,
				Keywords: tokenizer.ExtractKeywords(r.Content),
			},
			Score: r.Score,
		})
	}
	return results, nil
}
