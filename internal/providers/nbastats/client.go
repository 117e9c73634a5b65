// Package nbastats fetches league-wide player averages and per-player game
// logs from the public stats.nba.com API and maps the tabular responses to
// domain models.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"fantasy-intel-service/internal/domain/stats"
	"fantasy-intel-service/internal/providers"
)

// Config controls how the nbastats client reaches the upstream API.
type Config struct {
	BaseURL    string
	Season     int // season ending year, e.g. 2026 for 2025-26
	HTTPClient *http.Client
}

// Client fetches stats from stats.nba.com.
type Client struct {
	baseURL    string
	season     string
	httpClient httpDoer
}

// NewClient constructs an nbastats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		season:     formatSeason(cfg.Season),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchSeasonLines retrieves per-game season averages for every player.
func (c *Client) FetchSeasonLines(ctx context.Context) ([]stats.SeasonLine, error) {
	params := map[string]string{
		"Season":      c.season,
		"SeasonType":  "Regular Season",
		"PerMode":     "PerGame",
		"MeasureType": "Base",
		"LeagueID":    "00",
	}

	rs, err := c.fetch(ctx, endpointLeagueDash, params)
	if err != nil {
		return nil, err
	}
	return mapSeasonLines(rs), nil
}

// FetchGameLog retrieves a player's game log for the season, newest first.
func (c *Client) FetchGameLog(ctx context.Context, playerID int) ([]stats.GameLogEntry, error) {
	params := map[string]string{
		"Season":     c.season,
		"SeasonType": "Regular Season",
		"PlayerID":   strconv.Itoa(playerID),
	}

	rs, err := c.fetch(ctx, endpointGameLog, params)
	if err != nil {
		return nil, err
	}
	return mapGameLog(rs), nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, params map[string]string) (resultSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return resultSet{}, err
	}

	q := req.URL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()
	for k, v := range requiredHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return resultSet{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return resultSet{}, &providers.RateLimitError{Provider: providerName, StatusCode: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resultSet{}, fmt.Errorf("nbastats: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return resultSet{}, err
	}
	return payload.firstResultSet()
}

// formatSeason renders a season ending year the way the stats host expects,
// e.g. 2026 -> "2025-26".
func formatSeason(endingYear int) string {
	return fmt.Sprintf("%d-%02d", endingYear-1, endingYear%100)
}
