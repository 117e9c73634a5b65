// Package espn fetches a fantasy basketball league from the ESPN fantasy v3
// API and maps it to domain models. Private leagues require the espn_s2 and
// SWID session cookies.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/providers"
)

// Config controls how the espn client reaches the upstream API.
type Config struct {
	BaseURL    string
	LeagueID   int
	Season     int
	ESPNS2     string
	SWID       string
	HTTPClient *http.Client
}

// Client fetches league data from the ESPN fantasy API.
type Client struct {
	baseURL    string
	leagueID   int
	season     int
	espnS2     string
	swid       string
	httpClient httpDoer
}

// NewClient constructs an espn client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		leagueID:   cfg.LeagueID,
		season:     cfg.Season,
		espnS2:     cfg.ESPNS2,
		swid:       cfg.SWID,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchLeague retrieves the league with teams, rosters, the matchup schedule,
// and per-pro-team game schedules, then maps everything into domain models.
func (c *Client) FetchLeague(ctx context.Context) (league.League, error) {
	if c.leagueID == 0 {
		return league.League{}, fmt.Errorf("espn: league id not configured")
	}

	var payload leagueResponse
	if err := c.get(ctx, []string{viewTeam, viewRoster, viewMatchup, viewSettings}, &payload); err != nil {
		return league.League{}, err
	}

	var pro leagueResponse
	if err := c.get(ctx, []string{viewProSchedules}, &pro); err != nil {
		return league.League{}, err
	}

	return mapLeague(payload, pro.Settings.ProTeams), nil
}

func (c *Client) get(ctx context.Context, views []string, out any) error {
	req, err := c.buildRequest(ctx, views)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) buildRequest(ctx context.Context, views []string) (*http.Request, error) {
	url := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.baseURL, c.season, c.leagueID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for _, v := range views {
		q.Add("view", v)
	}
	req.URL.RawQuery = q.Encode()

	if c.espnS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.espnS2})
	}
	if c.swid != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.swid})
	}

	return req, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
