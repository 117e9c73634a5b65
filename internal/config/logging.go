package config

// LoggingConfig controls log level and output format.
type LoggingConfig struct {
	Level  string
	Format string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
