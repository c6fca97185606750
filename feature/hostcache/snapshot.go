package hostcache

import (
	"fmt"
	"io"
	"os"
	"time"

	"progress-tracker/core/library"

	"github.com/goccy/go-json"
)

// AllGamesCollection is the id of the host's all-games collection.
const AllGamesCollection = "type-games"

// Collection is a captured host collection.
type Collection struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	AppIDs []any  `json:"appids"`
}

// Snapshot is a capture of the host application's in-memory caches.
// Listing fields are kept loosely typed because the host emits mixed shapes.
type Snapshot struct {
	CapturedAt   time.Time                              `json:"captured_at"`
	Apps         []any                                  `json:"apps"`
	Collections  []Collection                           `json:"collections"`
	AppMapKeys   []any                                  `json:"app_map_keys"`
	Overviews    map[string]library.Overview            `json:"overviews"`
	Achievements map[string]library.AchievementProgress `json:"achievements"`
}

// Stats summarises a snapshot.
type Stats struct {
	Loaded       bool      `json:"loaded"`
	CapturedAt   time.Time `json:"captured_at"`
	Apps         int       `json:"apps"`
	Collections  int       `json:"collections"`
	AppMapKeys   int       `json:"app_map_keys"`
	Overviews    int       `json:"overviews"`
	Achievements int       `json:"achievements"`
}

// Stats returns entry counts.
func (s *Snapshot) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	return Stats{
		Loaded:       true,
		CapturedAt:   s.CapturedAt,
		Apps:         len(s.Apps),
		Collections:  len(s.Collections),
		AppMapKeys:   len(s.AppMapKeys),
		Overviews:    len(s.Overviews),
		Achievements: len(s.Achievements),
	}
}

func (s *Snapshot) normalize() {
	if s.Overviews == nil {
		s.Overviews = make(map[string]library.Overview)
	}
	if s.Achievements == nil {
		s.Achievements = make(map[string]library.AchievementProgress)
	}
	if s.CapturedAt.IsZero() {
		s.CapturedAt = time.Now().UTC()
	}
}

// Decode reads a snapshot document.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	snap.normalize()
	return &snap, nil
}

// LoadFile reads a snapshot from disk.
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
