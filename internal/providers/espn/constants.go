package espn

import "time"

const (
	providerName = "espn"

	defaultBaseURL     = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba"
	defaultHTTPTimeout = 30 * time.Second

	viewTeam         = "mTeam"
	viewRoster       = "mRoster"
	viewMatchup      = "mMatchup"
	viewSettings     = "mSettings"
	viewProSchedules = "proTeamSchedules_wl"
)
