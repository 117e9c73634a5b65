package config

import "time"

const (
	envNewsTTL   = "NEWS_CACHE_TTL"
	envNewsLimit = "NEWS_DEFAULT_LIMIT"

	defaultNewsTTL   = 10 * time.Minute
	defaultNewsLimit = 25
)

// NewsConfig controls the player news feed cache.
type NewsConfig struct {
	CacheTTL     time.Duration
	DefaultLimit int
}

func loadNews() NewsConfig {
	return NewsConfig{
		CacheTTL:     durationEnvOrDefault(envNewsTTL, defaultNewsTTL),
		DefaultLimit: intEnvOrDefault(envNewsLimit, defaultNewsLimit),
	}
}
