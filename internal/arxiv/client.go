// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv fetches article metadata from the arXiv query API and maps
// the Atom response into types.FeedResult.
//
// A Client holds only configuration; each call builds and returns its own
// result, so one Client may be shared across goroutines.
package arxiv

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/pdiddy/arxiv-cli/internal/httputil"
	"github.com/pdiddy/arxiv-cli/internal/logger"
	"github.com/pdiddy/arxiv-cli/internal/query"
	"github.com/pdiddy/arxiv-cli/pkg/types"
)

const (
	// DefaultBaseURL is the arXiv query endpoint.
	DefaultBaseURL = "http://export.arxiv.org/api/query"

	// DefaultUserAgent identifies this client to the provider.
	DefaultUserAgent = "arxiv-cli/0.1 (Go; Console)"

	// DefaultMaxResults matches the provider's own default page size.
	DefaultMaxResults = 10
)

// Client queries the metadata API.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string

	// Logger defaults to logger.L().
	Logger *slog.Logger
}

// New builds a Client from configuration, filling defaults for empty fields.
func New(cfg types.APIConfig) *Client {
	c := &Client{
		HTTP:      httputil.NewClient(cfg.HTTPConfig),
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}

// FetchByQuery runs a search_query request. q is a compiled query string
// (see query.Compile) or any string in the provider's dialect.
func (c *Client) FetchByQuery(ctx context.Context, q string, start, maxResults int) (*types.FeedResult, error) {
	if err := checkPage(start, maxResults); err != nil {
		return nil, err
	}
	value := NormalizeQuery(q)
	if value == "" || value == "+" {
		return nil, &types.Error{Op: "arxiv.fetch", Kind: types.KindMalformedQuery, Err: fmt.Errorf("empty search query")}
	}
	return c.fetch(ctx, "search_query", value, start, maxResults)
}

// FetchByIDs runs an id_list request for one or more identifiers.
func (c *Client) FetchByIDs(ctx context.Context, ids []string, start, maxResults int) (*types.FeedResult, error) {
	if err := checkPage(start, maxResults); err != nil {
		return nil, err
	}
	value := joinIDs(ids)
	if value == "" {
		return nil, &types.Error{Op: "arxiv.fetch", Kind: types.KindMalformedQuery, Err: fmt.Errorf("empty id list")}
	}
	return c.fetch(ctx, "id_list", value, start, maxResults)
}

// Search compiles n and runs it as a search_query request.
func (c *Client) Search(ctx context.Context, n query.Node, start, maxResults int) (*types.FeedResult, error) {
	q, err := query.Compile(n)
	if err != nil {
		return nil, err
	}
	return c.FetchByQuery(ctx, q, start, maxResults)
}

func (c *Client) fetch(ctx context.Context, param, value string, start, maxResults int) (*types.FeedResult, error) {
	log := c.log()
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	url := buildURL(base, param, value, start, maxResults)
	log.Debug("arxiv.request", "url", url)

	resp, err := httputil.Get(ctx, c.HTTP, url, c.UserAgent, "application/atom+xml")
	if err != nil {
		return nil, err
	}
	if err := httputil.CheckStatus("arxiv.fetch", resp); err != nil {
		log.Debug("arxiv.status", "url", url, "status", resp.StatusCode)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.Error{Op: "arxiv.fetch", Kind: types.KindTransport, Err: fmt.Errorf("reading response: %w", err)}
	}

	feed, err := Parse(body)
	if err != nil {
		return nil, err
	}
	feed.Query = value

	for _, skipped := range feed.Skipped {
		log.Warn("arxiv.entry.skipped", "error", skipped)
	}
	log.Debug("arxiv.response",
		"total", feed.Pagination.Total,
		"start", feed.Pagination.StartIndex,
		"entries", len(feed.Entries),
		"skipped", len(feed.Skipped))
	return feed, nil
}

func (c *Client) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logger.L()
}

func checkPage(start, maxResults int) error {
	if start < 0 || maxResults < 0 {
		return &types.Error{Op: "arxiv.fetch", Kind: types.KindMalformedQuery,
			Err: fmt.Errorf("start (%d) and max_results (%d) must be non-negative", start, maxResults)}
	}
	return nil
}
