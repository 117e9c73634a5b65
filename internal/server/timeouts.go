package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second

	// Shared rate limit for the league upstream, independent of poll interval.
	leagueRateLimit = time.Minute
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
