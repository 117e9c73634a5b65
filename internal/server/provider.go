package server

import (
	"log/slog"
	"net/http"

	"fantasy-intel-service/internal/config"
	"fantasy-intel-service/internal/providers"
	"fantasy-intel-service/internal/providers/espn"
	"fantasy-intel-service/internal/providers/fixture"
	"fantasy-intel-service/internal/providers/nbastats"
	"fantasy-intel-service/internal/providers/newsfeed"
)

// providerSet groups the three upstream data sources.
type providerSet struct {
	league providers.LeagueProvider
	news   providers.NewsProvider
	stats  providers.StatsProvider
}

func selectProviders(cfg config.Config, logger *slog.Logger) providerSet {
	switch cfg.Provider {
	case "fixture", "":
		f := fixture.New()
		return providerSet{league: f, news: f, stats: f}
	case "espn":
		return providerSet{
			league: espn.NewClient(espn.Config{
				BaseURL:  cfg.ESPN.BaseURL,
				LeagueID: cfg.ESPN.LeagueID,
				Season:   cfg.ESPN.Season,
				ESPNS2:   cfg.ESPN.ESPNS2,
				SWID:     cfg.ESPN.SWID,
			}),
			news: newsfeed.NewClient(newsfeed.Config{}),
			stats: nbastats.NewClient(nbastats.Config{
				BaseURL:    cfg.NBAStats.BaseURL,
				Season:     cfg.ESPN.Season,
				HTTPClient: &http.Client{Timeout: cfg.NBAStats.Timeout},
			}),
		}
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		f := fixture.New()
		return providerSet{league: f, news: f, stats: f}
	}
}
