package libsync

import (
	"context"
	"errors"
	"sync"

	"progress-tracker/core/library"
	"progress-tracker/core/rpc"
)

// eventLog records calls across fakes so tests can assert ordering.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(e string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.events))
	copy(out, l.events)
	return out
}

func (l *eventLog) count(e string) int {
	n := 0
	for _, got := range l.all() {
		if got == e {
			n++
		}
	}
	return n
}

type fakeSource struct {
	mu           sync.Mutex
	listings     [][]any
	listingErr   error
	discoverHits int
	overviews    map[string]library.Overview
	cached       map[string]library.AchievementProgress
	owned        map[string]library.OwnedGame
	payloads     map[string]*library.AchievementPayload
	// block makes remote lookups hang until the context ends and ignores it.
	block chan struct{}
	log   *eventLog
}

func (f *fakeSource) DiscoveryStrategies() []library.DiscoveryStrategy {
	return []library.DiscoveryStrategy{
		{Name: "broken", Discover: func(context.Context) ([]any, error) {
			return nil, errors.New("host not ready")
		}},
		{Name: "listing", Discover: func(context.Context) ([]any, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.discoverHits++
			if f.log != nil {
				f.log.add("discover")
			}
			if f.listingErr != nil {
				return nil, f.listingErr
			}
			if len(f.listings) == 0 {
				return nil, nil
			}
			next := f.listings[0]
			if len(f.listings) > 1 {
				f.listings = f.listings[1:]
			}
			return next, nil
		}},
	}
}

func (f *fakeSource) hits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.discoverHits
}

func (f *fakeSource) Overview(appid string) (library.Overview, bool) {
	o, ok := f.overviews[appid]
	return o, ok
}

func (f *fakeSource) CachedAchievements(appid string) (library.AchievementProgress, bool) {
	p, ok := f.cached[appid]
	return p, ok
}

func (f *fakeSource) FetchOwnedGame(_ context.Context, appid string) (library.OwnedGame, error) {
	if f.block != nil {
		<-f.block
	}
	g, ok := f.owned[appid]
	if !ok {
		return library.OwnedGame{}, errors.New("not owned")
	}
	return g, nil
}

func (f *fakeSource) FetchAchievements(_ context.Context, appid string) (*library.AchievementPayload, error) {
	if f.block != nil {
		<-f.block
	}
	p, ok := f.payloads[appid]
	if !ok {
		return nil, errors.New("no stats")
	}
	return p, nil
}

type fakeBackend struct {
	mu sync.Mutex

	settings      rpc.Settings
	settingsErr   error
	settingsPanic bool
	games         rpc.GameList
	gamesErr      error
	allGames      int

	// results are keyed by appid; missing entries succeed without a tag change.
	results map[string]rpc.SingleGameResult
	errs    map[string]error
	panics  map[string]bool
	submits []rpc.SingleGameSync

	library    []rpc.LibrarySync
	libraryRes rpc.SyncResult
	libraryErr error

	progress    []rpc.SyncProgress
	progressErr error

	// gate blocks every submit until closed.
	gate chan struct{}
	log  *eventLog
}

func (b *fakeBackend) GetSettings(context.Context) (rpc.Settings, error) {
	if b.settingsPanic {
		panic("settings exploded")
	}
	return b.settings, b.settingsErr
}

func (b *fakeBackend) GetAllGames(context.Context) (rpc.GameList, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allGames++
	if b.log != nil {
		b.log.add("get_all_games")
	}
	return b.games, b.gamesErr
}

func (b *fakeBackend) allGamesCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.allGames
}

func (b *fakeBackend) SyncSingleGameWithData(_ context.Context, req rpc.SingleGameSync) (rpc.SingleGameResult, error) {
	if b.gate != nil {
		<-b.gate
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.submits = append(b.submits, req)
	if b.log != nil {
		b.log.add("submit:" + req.AppID)
	}
	if b.panics[req.AppID] {
		panic("boom")
	}
	if err := b.errs[req.AppID]; err != nil {
		return rpc.SingleGameResult{}, err
	}
	if res, ok := b.results[req.AppID]; ok {
		return res, nil
	}
	return rpc.SingleGameResult{Success: true}, nil
}

func (b *fakeBackend) submitted() []rpc.SingleGameSync {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]rpc.SingleGameSync, len(b.submits))
	copy(out, b.submits)
	return out
}

func (b *fakeBackend) SyncLibraryWithPlaytime(_ context.Context, req rpc.LibrarySync) (rpc.SyncResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.library = append(b.library, req)
	return b.libraryRes, b.libraryErr
}

func (b *fakeBackend) GetSyncProgress(context.Context) (rpc.SyncProgress, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.progressErr != nil {
		return rpc.SyncProgress{}, b.progressErr
	}
	if len(b.progress) == 0 {
		return rpc.SyncProgress{Success: true}, nil
	}
	next := b.progress[0]
	if len(b.progress) > 1 {
		b.progress = b.progress[1:]
	}
	return next, nil
}

func boolPtr(v bool) *bool { return &v }

func progress(syncing bool, current, total int) rpc.SyncProgress {
	return rpc.SyncProgress{
		Success:           true,
		SyncProgressState: library.SyncProgressState{Syncing: syncing, Current: current, Total: total},
	}
}
