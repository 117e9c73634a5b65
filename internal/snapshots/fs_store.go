package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fantasy-intel-service/internal/domain/league"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadLeague(date string) (league.Snapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadLeague reads a league snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/league/{date}.json with a Snapshot payload.
func (s *FSStore) LoadLeague(date string) (league.Snapshot, error) {
	var payload league.Snapshot
	if err := s.load(kindLeague, date, &payload); err != nil {
		return league.Snapshot{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// LoadNews reads a news snapshot for the given date from disk.
func (s *FSStore) LoadNews(date string) (NewsSnapshot, error) {
	var payload NewsSnapshot
	if err := s.load(kindNews, date, &payload); err != nil {
		return NewsSnapshot{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

func (s *FSStore) load(kind snapshotKind, date string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if date == "" {
		return errors.New("snapshot date required")
	}
	path := filepath.Join(s.basePath, string(kind), fmt.Sprintf("%s.json", date))
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(payload)
}
