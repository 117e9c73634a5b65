package server

import (
	"context"
	"log/slog"

	"fantasy-intel-service/internal/config"
	"fantasy-intel-service/internal/providers"
	"fantasy-intel-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
	syncer *snapshots.Syncer
}

func buildSnapshots(cfg config.Config, leagueProvider providers.LeagueProvider, newsProvider providers.NewsProvider, logger *slog.Logger) snapshotComponents {
	basePath := cfg.Snapshots.SnapshotFolder
	writer := snapshots.NewWriter(basePath, cfg.Snapshots.RetentionDays)
	store := snapshots.NewFSStore(basePath)
	syncer := snapshots.NewSyncer(leagueProvider, newsProvider, writer, snapshots.SyncConfig{
		Enabled:      cfg.Snapshots.Enabled,
		Interval:     cfg.Snapshots.Interval,
		DailyHourUTC: cfg.Snapshots.DailyHourUTC,
	}, logger)
	go syncer.Run(context.Background())

	return snapshotComponents{
		store:  store,
		writer: writer,
		syncer: syncer,
	}
}
