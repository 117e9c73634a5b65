package config

const (
	envESPNBaseURL  = "ESPN_BASE_URL"
	envESPNLeagueID = "LEAGUE_ID"
	envESPNSeason   = "SEASON"
	envESPNS2       = "ESPN_S2"
	envESPNSwid     = "SWID"

	defaultESPNBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba"
	defaultESPNSeason  = 2026
)

// ESPNConfig controls how we talk to the ESPN fantasy API. ESPN_S2 and SWID
// are the session cookies required for private leagues; public leagues work
// without them.
type ESPNConfig struct {
	BaseURL  string
	LeagueID int
	Season   int
	ESPNS2   string
	SWID     string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL:  envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
		LeagueID: intEnvOrDefault(envESPNLeagueID, 0),
		Season:   intEnvOrDefault(envESPNSeason, defaultESPNSeason),
		ESPNS2:   envOrDefault(envESPNS2, ""),
		SWID:     envOrDefault(envESPNSwid, ""),
	}
}
