package hostcache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"progress-tracker/core/library"
	"progress-tracker/core/storage"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrNoSnapshot is returned when nothing has been captured yet.
var ErrNoSnapshot = errors.New("no host snapshot loaded")

// Store holds the latest host snapshot.
type Store struct {
	mu     sync.RWMutex
	snap   *Snapshot
	logger *zap.Logger

	objects storage.Client
	bucket  string
	object  string
}

// NewStore creates an empty store.
func NewStore(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// WithObjectStore persists replaced snapshots to the given bucket object.
func (s *Store) WithObjectStore(client storage.Client, bucket, object string) *Store {
	s.objects = client
	s.bucket = bucket
	s.object = object
	return s
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(snap *Snapshot) {
	snap.normalize()
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	s.logger.Info("Host snapshot replaced", zap.Any("stats", snap.Stats()))
}

// Stats summarises the current snapshot.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Stats()
}

// PutOverview updates a single overview entry.
func (s *Store) PutOverview(appid string, o library.Overview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure()
	s.snap.Overviews[appid] = o
}

// PutAchievements updates a single achievement progress entry.
func (s *Store) PutAchievements(appid string, p library.AchievementProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure()
	s.snap.Achievements[appid] = p
}

func (s *Store) ensure() {
	if s.snap == nil {
		s.snap = &Snapshot{}
	}
	s.snap.normalize()
}

// Overview returns the cached overview of a game.
func (s *Store) Overview(appid string) (library.Overview, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return library.Overview{}, false
	}
	o, ok := s.snap.Overviews[appid]
	return o, ok
}

// CachedAchievements returns the cached achievement progress of a game.
func (s *Store) CachedAchievements(appid string) (library.AchievementProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return library.AchievementProgress{}, false
	}
	p, ok := s.snap.Achievements[appid]
	return p, ok
}

func (s *Store) listing(pick func(*Snapshot) []any) ([]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ErrNoSnapshot
	}
	src := pick(s.snap)
	out := make([]any, len(src))
	copy(out, src)
	return out, nil
}

func (s *Store) apps(context.Context) ([]any, error) {
	return s.listing(func(snap *Snapshot) []any { return snap.Apps })
}

func (s *Store) allGamesCollection(context.Context) ([]any, error) {
	return s.listing(func(snap *Snapshot) []any {
		for _, c := range snap.Collections {
			if c.ID == AllGamesCollection {
				return c.AppIDs
			}
		}
		return nil
	})
}

func (s *Store) appMapKeys(context.Context) ([]any, error) {
	return s.listing(func(snap *Snapshot) []any { return snap.AppMapKeys })
}

// LoadObject replaces the snapshot with the configured bucket object.
func (s *Store) LoadObject(ctx context.Context) error {
	if s.objects == nil {
		return fmt.Errorf("object store not configured")
	}
	obj, err := s.objects.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get snapshot object: %w", err)
	}
	defer obj.Close()

	snap, err := Decode(obj)
	if err != nil {
		return err
	}
	s.Replace(snap)
	return nil
}

// Persist writes the current snapshot to the configured bucket object.
// It is a no-op without an object store.
func (s *Store) Persist(ctx context.Context) error {
	if s.objects == nil {
		return nil
	}

	s.mu.RLock()
	if s.snap == nil {
		s.mu.RUnlock()
		return ErrNoSnapshot
	}
	data, err := json.Marshal(s.snap)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.objects.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put snapshot object: %w", err)
	}
	return nil
}
