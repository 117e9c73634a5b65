package config

import "time"

// SnapshotSyncConfig controls automatic snapshot refresh/prune behavior.
type SnapshotSyncConfig struct {
	Enabled        bool
	Days           int           // rolling window of past days to retain
	Interval       time.Duration // delay between snapshot fetches
	DailyHourUTC   int           // hour of day (0-23) for the daily refresh
	RetentionDays  int           // retention for pruning
	AdminToken     string        // reused for refresh endpoint auth
	SnapshotFolder string        // base path for snapshots
}

func loadSnapshotSync() SnapshotSyncConfig {
	pastDays := intEnvOrDefault(envSnapshotDays, defaultSnapshotDays)
	// Retain only the rolling past window (+1 for the crossover day).
	retentionDays := pastDays + 1

	return SnapshotSyncConfig{
		Enabled:        boolEnvOrDefault(envSnapshotSync, defaultSnapshotSync),
		Days:           pastDays,
		Interval:       durationEnvOrDefault(envSnapshotRate, defaultSnapshotInterval),
		DailyHourUTC:   intEnvOrDefault(envSnapshotHour, defaultSnapshotDailyHour),
		RetentionDays:  retentionDays,
		AdminToken:     envOrDefault(envAdminToken, ""),
		SnapshotFolder: "data/snapshots",
	}
}
