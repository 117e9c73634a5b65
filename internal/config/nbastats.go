package config

import "time"

const (
	envNBAStatsBaseURL = "NBA_STATS_BASE_URL"
	envNBAStatsTimeout = "NBA_STATS_TIMEOUT"
	envNBAStatsTTL     = "NBA_STATS_CACHE_TTL"

	defaultNBAStatsBaseURL = "https://stats.nba.com/stats"
	defaultNBAStatsTimeout = 30 * time.Second
	defaultNBAStatsTTL     = time.Hour
)

// NBAStatsConfig controls the stats.nba.com client. The endpoint is slow and
// rate limited, so responses are cached.
type NBAStatsConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:  envOrDefault(envNBAStatsBaseURL, defaultNBAStatsBaseURL),
		Timeout:  durationEnvOrDefault(envNBAStatsTimeout, defaultNBAStatsTimeout),
		CacheTTL: durationEnvOrDefault(envNBAStatsTTL, defaultNBAStatsTTL),
	}
}
