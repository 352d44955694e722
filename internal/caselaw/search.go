// Package caselaw fetches precedent records for prompt context. The
// collaborator is optional: search failures and an unconfigured endpoint
// both yield an empty result set, never an error the chat pipeline can
// trip over.
package caselaw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nyaysetu/legalchat/internal/models"
	"go.uber.org/zap"
)

// Searcher finds precedent cases for a query.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) []models.CaseLaw
}

// Noop is the searcher used when no endpoint is configured.
type Noop struct{}

func (Noop) Search(context.Context, string, int) []models.CaseLaw { return nil }

// Client queries a case-law search endpoint over HTTP and caches recent
// results.
type Client struct {
	endpoint string
	http     *http.Client
	cache    *cache
	logger   *zap.Logger
}

func NewClient(endpoint string, timeout time.Duration, cacheSize int, cacheTTL time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		cache:    newCache(cacheSize, cacheTTL),
		logger:   logger,
	}
}

// searchResponse is the wire shape of the search endpoint.
type searchResponse struct {
	Results []models.CaseLaw `json:"results"`
}

// Search returns up to limit precedent records for the query. Results are
// served from the TTL cache when fresh; any failure returns nil.
func (c *Client) Search(ctx context.Context, query string, limit int) []models.CaseLaw {
	if c.endpoint == "" || query == "" {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}

	if cached, ok := c.cache.get(query); ok {
		return clip(cached, limit)
	}

	results, err := c.fetch(ctx, query, limit)
	if err != nil {
		c.logger.Warn("case-law search failed", zap.Error(err), zap.String("query", query))
		return nil
	}
	c.cache.put(query, results)
	return clip(results, limit)
}

func (c *Client) fetch(ctx context.Context, query string, limit int) ([]models.CaseLaw, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return body.Results, nil
}

func clip(results []models.CaseLaw, limit int) []models.CaseLaw {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
