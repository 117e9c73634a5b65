package stats

// SeasonLine holds a player's per-game season averages for the 9-cat format.
type SeasonLine struct {
	PlayerID  int     `json:"playerId"`
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Minutes   float64 `json:"minutes"`
	Points    float64 `json:"points"`
	Rebounds  float64 `json:"rebounds"`
	Assists   float64 `json:"assists"`
	Steals    float64 `json:"steals"`
	Blocks    float64 `json:"blocks"`
	Threes    float64 `json:"threes"`
	Turnovers float64 `json:"turnovers"`
	FGPct     float64 `json:"fgPct"`
	FTPct     float64 `json:"ftPct"`
}

// Rating is a season line annotated with per-category z-scores.
type Rating struct {
	SeasonLine
	ZScores map[string]float64 `json:"zScores"`
	TotalZ  float64            `json:"totalZ"`
	Rank    int                `json:"rank"`
}

// GameLogEntry is one game from a player's log, most recent first.
type GameLogEntry struct {
	GameDate  string  `json:"gameDate"`
	Minutes   float64 `json:"minutes"`
	Points    float64 `json:"points"`
	Rebounds  float64 `json:"rebounds"`
	Assists   float64 `json:"assists"`
	Steals    float64 `json:"steals"`
	Blocks    float64 `json:"blocks"`
	Threes    float64 `json:"threes"`
	Turnovers float64 `json:"turnovers"`
	FGPct     float64 `json:"fgPct"`
	FTPct     float64 `json:"ftPct"`
}

// ConsistencyReport summarizes a player's recent volatility.
type ConsistencyReport struct {
	PlayerID      int                `json:"playerId"`
	GamesAnalyzed int                `json:"gamesAnalyzed"`
	Grade         string             `json:"consistencyGrade"`
	Volatility    map[string]float64 `json:"volatilityStats"`
	AvgPoints     float64            `json:"avgPoints"`
	AvgMinutes    float64            `json:"avgMinutes"`
}
