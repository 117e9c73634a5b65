// Package newsfeed scrapes recent player news from the NBC Sports fantasy
// news page and maps the entries to domain models.
package newsfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"fantasy-intel-service/internal/domain/news"
)

// Config controls how the newsfeed client reaches the source page.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client scrapes player news.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a newsfeed client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// FetchNews scrapes the latest player news, newest first, up to limit items.
func (c *Client) FetchNews(ctx context.Context, limit int) (news.Feed, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return news.Feed{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return news.Feed{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return news.Feed{}, fmt.Errorf("newsfeed: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return news.Feed{}, err
	}

	items := parseFeed(doc, limit)
	if items == nil {
		return news.Feed{}, fmt.Errorf("newsfeed: news list not found, page structure may have changed")
	}
	return news.Feed{Items: items}, nil
}
