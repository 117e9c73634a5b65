package newsfeed

import "time"

const (
	defaultBaseURL     = "https://www.nbcsports.com/fantasy/basketball/player-news"
	defaultHTTPTimeout = 10 * time.Second
	defaultLimit       = 15

	// Page structure hooks. The source site occasionally reshuffles these.
	classList     = "PlayerNewsModuleList-items"
	classItem     = "PlayerNewsModuleList-item"
	classHeadline = "PlayerNewsPost-headline"
	classAnalysis = "PlayerNewsPost-analysis"
	classStory    = "PlayerNewsPost-story"
	classDate     = "PlayerNewsPost-date"
	classTeam     = "PlayerNewsPost-team-abbr"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)
