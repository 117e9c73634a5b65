package espn

import (
	"strings"
	"time"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/domain/players"
	"fantasy-intel-service/internal/domain/teams"
	"fantasy-intel-service/internal/timeutil"
)

func mapLeague(payload leagueResponse, proTeams []proTeamResponse) league.League {
	byProTeam := indexProTeams(proTeams)

	mapped := make([]teams.Team, 0, len(payload.Teams))
	for _, t := range payload.Teams {
		mapped = append(mapped, mapTeam(t, payload.Schedule, byProTeam))
	}

	return league.League{
		LeagueID: payload.ID,
		Season:   payload.SeasonID,
		Name:     payload.Settings.Name,
		Teams:    mapped,
	}
}

func mapTeam(t teamResponse, schedule []scheduleResponse, byProTeam map[int]proTeamResponse) teams.Team {
	roster := make([]players.Player, 0, len(t.Roster.Entries))
	for _, e := range t.Roster.Entries {
		roster = append(roster, mapPlayer(e.PlayerPoolEntry.Player, byProTeam))
	}

	owner := ""
	if len(t.Owners) > 0 {
		owner = t.Owners[0]
	}

	return teams.Team{
		ID:     t.ID,
		Name:   teamName(t),
		Abbrev: t.Abbrev,
		Owner:  owner,
		Record: teams.Record{
			Wins:   t.Record.Overall.Wins,
			Losses: t.Record.Overall.Losses,
			Ties:   t.Record.Overall.Ties,
		},
		Roster:   roster,
		Schedule: mapSchedule(t.ID, schedule),
	}
}

// teamName prefers the single name field; older seasons split it into
// location and nickname.
func teamName(t teamResponse) string {
	if t.Name != "" {
		return t.Name
	}
	return strings.TrimSpace(t.Location + " " + t.Nickname)
}

// mapSchedule reduces the league-wide matchup list to the entries involving
// teamID, ordered by matchup period. Index N-1 holds period N; periods the
// team sits out keep a zero entry.
func mapSchedule(teamID int, schedule []scheduleResponse) []teams.ScheduleEntry {
	maxPeriod := 0
	for _, m := range schedule {
		if m.MatchupPeriodID > maxPeriod {
			maxPeriod = m.MatchupPeriodID
		}
	}
	if maxPeriod == 0 {
		return nil
	}

	entries := make([]teams.ScheduleEntry, maxPeriod)
	for _, m := range schedule {
		if m.Home.TeamID != teamID && m.Away.TeamID != teamID {
			continue
		}
		entries[m.MatchupPeriodID-1] = teams.ScheduleEntry{
			HomeTeamID: m.Home.TeamID,
			AwayTeamID: m.Away.TeamID,
		}
	}
	return entries
}

func mapPlayer(p playerResponse, byProTeam map[int]proTeamResponse) players.Player {
	return players.Player{
		ID:           p.ID,
		Name:         p.FullName,
		Position:     mapPosition(p.DefaultPositionID),
		ProTeam:      byProTeam[p.ProTeamID].Abbrev,
		InjuryStatus: p.InjuryStatus,
		Schedule:     mapProSchedule(p.ProTeamID, byProTeam),
	}
}

// mapProSchedule flattens a pro team's games-by-scoring-period map into the
// player schedule shape. Game timestamps arrive as epoch milliseconds and are
// normalized to UTC midnight.
func mapProSchedule(proTeamID int, byProTeam map[int]proTeamResponse) map[string]players.ScheduledGame {
	pt, ok := byProTeam[proTeamID]
	if !ok || len(pt.GamesByPeriod) == 0 {
		return nil
	}

	out := make(map[string]players.ScheduledGame, len(pt.GamesByPeriod))
	for period, games := range pt.GamesByPeriod {
		if len(games) == 0 {
			continue
		}
		g := games[0]
		out[period] = players.ScheduledGame{
			Date:     timeutil.Day(time.UnixMilli(g.Date).UTC()),
			Opponent: opponentAbbrev(proTeamID, g, byProTeam),
		}
	}
	return out
}

func opponentAbbrev(proTeamID int, g proGameResponse, byProTeam map[int]proTeamResponse) string {
	oppID := g.HomeProTeamID
	if oppID == proTeamID {
		oppID = g.AwayProTeamID
	}
	return byProTeam[oppID].Abbrev
}

func indexProTeams(proTeams []proTeamResponse) map[int]proTeamResponse {
	byID := make(map[int]proTeamResponse, len(proTeams))
	for _, pt := range proTeams {
		byID[pt.ID] = pt
	}
	return byID
}

func mapPosition(id int) string {
	switch id {
	case 1:
		return "PG"
	case 2:
		return "SG"
	case 3:
		return "SF"
	case 4:
		return "PF"
	case 5:
		return "C"
	default:
		return ""
	}
}
