package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/domain/news"
	"fantasy-intel-service/internal/timeutil"
)

type snapshotKind string

const (
	kindLeague snapshotKind = "league"
	kindNews   snapshotKind = "news"
)

// NewsSnapshot is the news payload persisted per date.
type NewsSnapshot struct {
	Date  string      `json:"date"`
	Items []news.Item `json:"items"`
}

// Writer persists snapshots and manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

func (w *Writer) snapshotPath(kind snapshotKind, date string) string {
	switch kind {
	case kindLeague:
		return LeagueSnapshotPath(w.basePath, date)
	case kindNews:
		return NewsSnapshotPath(w.basePath, date)
	default:
		return filepath.Join(w.basePath, string(kind), fmt.Sprintf("%s.json", date))
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteLeagueSnapshot writes the league snapshot for the given date (YYYY-MM-DD) and prunes old snapshots.
func (w *Writer) WriteLeagueSnapshot(date string, snapshot league.Snapshot) error {
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	sort.Slice(snapshot.League.Teams, func(i, j int) bool {
		return snapshot.League.Teams[i].ID < snapshot.League.Teams[j].ID
	})
	return w.writeSnapshot(kindLeague, date, snapshot)
}

// WriteNewsSnapshot writes the news snapshot for the given date and prunes old snapshots.
func (w *Writer) WriteNewsSnapshot(date string, snapshot NewsSnapshot) error {
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	return w.writeSnapshot(kindNews, date, snapshot)
}

func (w *Writer) writeSnapshot(kind snapshotKind, date string, payload any) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}

	target := w.snapshotPath(kind, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp := target + ".tmp"
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(kind, date)
	}

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(kind, date)
}

func (w *Writer) updateManifest(kind snapshotKind, date string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	now := time.Now().UTC()

	dates, err := w.listDates(kind)
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned, err := w.pruneOldSnapshots(kind, dates)
	if err != nil {
		return err
	}

	switch kind {
	case kindLeague:
		m.League.Dates = pruned
		m.League.LastRefreshed = now
		m.Retention.LeagueDays = w.retentionDays
	case kindNews:
		m.News.Dates = pruned
		m.News.LastRefreshed = now
		m.Retention.NewsDays = w.retentionDays
	}

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates(kind snapshotKind) ([]string, error) {
	dir := filepath.Join(w.basePath, string(kind))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var (
		dates []string
		seen  = make(map[string]struct{})
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := name[:len(name)-len(".json")]
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		dates = append(dates, base)
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(kind snapshotKind, dates []string) ([]string, error) {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			path := w.snapshotPath(kind, d)
			_ = os.Remove(path)
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}
