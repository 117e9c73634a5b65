package espn

// Wire shapes for the fantasy v3 API. Only the fields we map are declared.

type leagueResponse struct {
	ID       int                `json:"id"`
	SeasonID int                `json:"seasonId"`
	Settings settingsResponse   `json:"settings"`
	Teams    []teamResponse     `json:"teams"`
	Schedule []scheduleResponse `json:"schedule"`
}

type settingsResponse struct {
	Name     string            `json:"name"`
	ProTeams []proTeamResponse `json:"proTeams"`
}

type teamResponse struct {
	ID       int            `json:"id"`
	Abbrev   string         `json:"abbrev"`
	Name     string         `json:"name"`
	Location string         `json:"location"`
	Nickname string         `json:"nickname"`
	Owners   []string       `json:"owners"`
	Record   recordResponse `json:"record"`
	Roster   rosterResponse `json:"roster"`
}

type recordResponse struct {
	Overall overallResponse `json:"overall"`
}

type overallResponse struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

type rosterResponse struct {
	Entries []rosterEntryResponse `json:"entries"`
}

type rosterEntryResponse struct {
	PlayerPoolEntry playerPoolEntryResponse `json:"playerPoolEntry"`
}

type playerPoolEntryResponse struct {
	Player playerResponse `json:"player"`
}

type playerResponse struct {
	ID                int    `json:"id"`
	FullName          string `json:"fullName"`
	DefaultPositionID int    `json:"defaultPositionId"`
	ProTeamID         int    `json:"proTeamId"`
	InjuryStatus      string `json:"injuryStatus"`
}

// scheduleResponse is one league matchup; away is absent on bye periods.
type scheduleResponse struct {
	MatchupPeriodID int                  `json:"matchupPeriodId"`
	Home            scheduleSideResponse `json:"home"`
	Away            scheduleSideResponse `json:"away"`
}

type scheduleSideResponse struct {
	TeamID int `json:"teamId"`
}

type proTeamResponse struct {
	ID            int                          `json:"id"`
	Abbrev        string                       `json:"abbrev"`
	GamesByPeriod map[string][]proGameResponse `json:"proGamesByScoringPeriod"`
}

type proGameResponse struct {
	Date          int64 `json:"date"` // epoch milliseconds
	HomeProTeamID int   `json:"homeProTeamId"`
	AwayProTeamID int   `json:"awayProTeamId"`
}
