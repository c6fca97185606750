package watcher

import (
	"context"
	"regexp"
	"sync"
	"time"

	"progress-tracker/core/library"

	"go.uber.org/zap"
)

var achievementsRoute = regexp.MustCompile(`/library/app/(\d+)/tab/YourStuff`)

const defaultSettle = 100 * time.Millisecond

// DefaultDelays is the cache polling schedule after a page view.
var DefaultDelays = []time.Duration{
	500 * time.Millisecond,
	time.Second,
	2 * time.Second,
	3 * time.Second,
	3 * time.Second,
}

// AchievementCache is the host's achievement progress cache.
type AchievementCache interface {
	CachedAchievements(appid string) (library.AchievementProgress, bool)
}

// SyncFunc syncs a single game.
type SyncFunc func(ctx context.Context, appid string) error

// Config holds watcher timing.
type Config struct {
	// Settle is the wait before the cache is first polled.
	Settle time.Duration
	// Delays are the waits between cache polls.
	Delays []time.Duration
}

// Watcher syncs a game once the user opens its achievements page and the
// host has loaded its achievement progress.
type Watcher struct {
	cache  AchievementCache
	sync   SyncFunc
	cfg    Config
	logger *zap.Logger

	mu        sync.Mutex
	base      context.Context
	stop      context.CancelFunc
	lastRoute string
	cancelJob context.CancelFunc
	jobs      sync.WaitGroup
}

// New creates a watcher. Zero config values select defaults.
func New(cache AchievementCache, sync SyncFunc, cfg Config, logger *zap.Logger) *Watcher {
	if cfg.Settle <= 0 {
		cfg.Settle = defaultSettle
	}
	if len(cfg.Delays) == 0 {
		cfg.Delays = DefaultDelays
	}
	return &Watcher{cache: cache, sync: sync, cfg: cfg, logger: logger}
}

// MatchRoute returns the app id of an achievements page route.
func MatchRoute(route string) (string, bool) {
	m := achievementsRoute.FindStringSubmatch(route)
	if m == nil {
		return "", false
	}
	return library.ParseAppID(m[1])
}

// Start activates the watcher. Routes observed before Start are ignored.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.base != nil {
		return
	}
	w.base, w.stop = context.WithCancel(ctx)
}

// Stop cancels any pending job and waits for it to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stop != nil {
		w.stop()
	}
	w.cancelJob = nil
	w.mu.Unlock()
	w.jobs.Wait()
}

// LastRoute returns the most recently observed route.
func (w *Watcher) LastRoute() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastRoute
}

// Observe handles a route change. It reports whether a sync job was scheduled.
func (w *Watcher) Observe(route string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.base == nil || w.base.Err() != nil || route == w.lastRoute {
		return false
	}
	w.lastRoute = route

	appid, ok := MatchRoute(route)
	if !ok {
		return false
	}

	if w.cancelJob != nil {
		w.cancelJob()
	}
	ctx, cancel := context.WithCancel(w.base)
	w.cancelJob = cancel

	w.jobs.Add(1)
	go func() {
		defer w.jobs.Done()
		defer cancel()
		w.run(ctx, appid)
	}()
	return true
}

func (w *Watcher) run(ctx context.Context, appid string) {
	if !wait(ctx, w.cfg.Settle) {
		return
	}

	for _, d := range w.cfg.Delays {
		if !wait(ctx, d) {
			return
		}
		if p, ok := w.cache.CachedAchievements(appid); ok && p.Total > 0 {
			w.logger.Debug("Achievement data loaded, syncing game", zap.String("appid", appid))
			if err := w.sync(ctx, appid); err != nil {
				w.logger.Warn("Page view sync failed", zap.String("appid", appid), zap.Error(err))
			}
			return
		}
	}
	w.logger.Debug("Achievement data never loaded", zap.String("appid", appid))
}

func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
