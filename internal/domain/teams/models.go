package teams

import "fantasy-intel-service/internal/domain/players"

// ScheduleEntry is a team's own view of one matchup period. Each side holds
// the fantasy team id it references, or 0 when that side is absent (a bye).
// Entries are 0-indexed; matchup period N lives at index N-1.
type ScheduleEntry struct {
	HomeTeamID int `json:"homeTeamId"`
	AwayTeamID int `json:"awayTeamId"`
}

// IsBye reports whether either side of the entry is missing.
func (e ScheduleEntry) IsBye() bool {
	return e.HomeTeamID == 0 || e.AwayTeamID == 0
}

// Record captures a team's win/loss standing.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Team represents a fantasy team with its roster and per-week matchup schedule.
type Team struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Abbrev   string           `json:"abbrev,omitempty"`
	Owner    string           `json:"owner,omitempty"`
	Record   Record           `json:"record"`
	Roster   []players.Player `json:"roster"`
	Schedule []ScheduleEntry  `json:"schedule"`
}
