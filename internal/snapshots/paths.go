package snapshots

import (
	"fmt"
	"path/filepath"
)

// LeagueSnapshotPath builds the path to a league snapshot for a given date.
func LeagueSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "league", fmt.Sprintf("%s.json", date))
}

// NewsSnapshotPath builds the path to a news snapshot for a given date.
func NewsSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "news", fmt.Sprintf("%s.json", date))
}
