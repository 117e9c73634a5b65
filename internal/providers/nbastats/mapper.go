package nbastats

import "fantasy-intel-service/internal/domain/stats"

func mapSeasonLines(rs resultSet) []stats.SeasonLine {
	cols := rs.columns()
	lines := make([]stats.SeasonLine, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		lines = append(lines, stats.SeasonLine{
			PlayerID:  cols.int(row, "PLAYER_ID"),
			Name:      cols.str(row, "PLAYER_NAME"),
			Team:      cols.str(row, "TEAM_ABBREVIATION"),
			Minutes:   cols.float(row, "MIN"),
			Points:    cols.float(row, "PTS"),
			Rebounds:  cols.float(row, "REB"),
			Assists:   cols.float(row, "AST"),
			Steals:    cols.float(row, "STL"),
			Blocks:    cols.float(row, "BLK"),
			Threes:    cols.float(row, "FG3M"),
			Turnovers: cols.float(row, "TOV"),
			FGPct:     cols.float(row, "FG_PCT"),
			FTPct:     cols.float(row, "FT_PCT"),
		})
	}
	return lines
}

func mapGameLog(rs resultSet) []stats.GameLogEntry {
	cols := rs.columns()
	log := make([]stats.GameLogEntry, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		log = append(log, stats.GameLogEntry{
			GameDate:  cols.str(row, "GAME_DATE"),
			Minutes:   cols.float(row, "MIN"),
			Points:    cols.float(row, "PTS"),
			Rebounds:  cols.float(row, "REB"),
			Assists:   cols.float(row, "AST"),
			Steals:    cols.float(row, "STL"),
			Blocks:    cols.float(row, "BLK"),
			Threes:    cols.float(row, "FG3M"),
			Turnovers: cols.float(row, "TOV"),
			FGPct:     cols.float(row, "FG_PCT"),
			FTPct:     cols.float(row, "FT_PCT"),
		})
	}
	return log
}
