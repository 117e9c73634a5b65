package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Logging      LoggingConfig
	CORS         CORSConfig
	ESPN         ESPNConfig
	NBAStats     NBAStatsConfig
	News         NewsConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotSyncConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Call LoadDotenv first if a .env file should be honored.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Logging:      loadLogging(),
		CORS:         loadCORS(),
		ESPN:         loadESPN(),
		NBAStats:     loadNBAStats(),
		News:         loadNews(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshotSync(),
	}
}
