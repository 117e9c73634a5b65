package league

import "fantasy-intel-service/internal/domain/teams"

// League is the canonical fantasy-league snapshot exposed by the service.
type League struct {
	LeagueID int          `json:"leagueId"`
	Season   int          `json:"season"`
	Name     string       `json:"name"`
	Teams    []teams.Team `json:"teams"`
}

// Snapshot is the payload persisted per date and returned by /league/info.
type Snapshot struct {
	Date   string `json:"date"`
	League League `json:"league"`
}

// NewSnapshot builds a Snapshot payload.
func NewSnapshot(date string, lg League) Snapshot {
	return Snapshot{Date: date, League: lg}
}

// TeamByID returns the team with the given id if present.
func (l League) TeamByID(id int) (teams.Team, bool) {
	for _, t := range l.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}
