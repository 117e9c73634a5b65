package nbastats

import "time"

const (
	providerName = "nbastats"

	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 30 * time.Second

	endpointLeagueDash = "leaguedashplayerstats"
	endpointGameLog    = "playergamelog"
)

// stats.nba.com rejects requests without browser-like headers.
var requiredHeaders = map[string]string{
	"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Referer":            "https://www.nba.com/",
	"Origin":             "https://www.nba.com",
	"Accept":             "application/json",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
}
