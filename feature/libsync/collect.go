package libsync

import (
	"context"
	"errors"
	"time"

	"progress-tracker/core/library"
	"progress-tracker/core/metrics"

	"go.uber.org/zap"
)

// Adapter kinds, used as metric labels.
const (
	kindPlaytime     = "playtime"
	kindAchievements = "achievements"
	kindName         = "name"
)

const defaultRemoteTimeout = 5 * time.Second

// Collector gathers per-game records: cache first, then a remote lookup raced
// against a fixed timeout, then no data. It never returns errors.
type Collector struct {
	source   DataSource
	timeout  time.Duration
	logger   *zap.Logger
	recorder *metrics.Recorder
}

// NewCollector creates a collector. A non-positive timeout selects 5s.
func NewCollector(source DataSource, timeout time.Duration, logger *zap.Logger, recorder *metrics.Recorder) *Collector {
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &Collector{source: source, timeout: timeout, logger: logger, recorder: recorder}
}

type raceResult[T any] struct {
	val T
	err error
}

// race runs fn and waits at most timeout for it. A result arriving after the
// timeout is dropped.
func race[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan raceResult[T], 1)
	go func() {
		v, err := fn(ctx)
		done <- raceResult[T]{val: v, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (c *Collector) remoteTier(kind, appid string, err error) {
	tier := metrics.TierMiss
	if errors.Is(err, context.DeadlineExceeded) {
		tier = metrics.TierTimeout
		c.logger.Debug("Remote lookup timed out", zap.String("kind", kind), zap.String("appid", appid))
	} else if err != nil {
		c.logger.Debug("Remote lookup failed", zap.String("kind", kind), zap.String("appid", appid), zap.Error(err))
	}
	c.recorder.RecordLookup(kind, tier)
}

// Playtime returns the game's playtime. A miss yields the zero record, which
// is indistinguishable from a game that was never played.
func (c *Collector) Playtime(ctx context.Context, appid string) library.PlaytimeRecord {
	if o, ok := c.source.Overview(appid); ok {
		c.recorder.RecordLookup(kindPlaytime, metrics.TierCache)
		return o.Playtime()
	}

	game, err := race(ctx, c.timeout, func(ctx context.Context) (library.OwnedGame, error) {
		return c.source.FetchOwnedGame(ctx, appid)
	})
	if err == nil {
		c.recorder.RecordLookup(kindPlaytime, metrics.TierRemote)
		return game.Playtime()
	}
	c.remoteTier(kindPlaytime, appid, err)
	return library.PlaytimeRecord{}
}

// Achievements returns the game's achievement progress, or nil when nothing
// valid is known. Records with no achievements are never returned.
func (c *Collector) Achievements(ctx context.Context, appid string) *library.AchievementRecord {
	if p, ok := c.source.CachedAchievements(appid); ok {
		if rec := p.Record(); rec.Valid() {
			c.recorder.RecordLookup(kindAchievements, metrics.TierCache)
			return &rec
		}
	}

	payload, err := race(ctx, c.timeout, func(ctx context.Context) (*library.AchievementPayload, error) {
		return c.source.FetchAchievements(ctx, appid)
	})
	if err == nil {
		if rec, ok := payload.Record(); ok {
			c.recorder.RecordLookup(kindAchievements, metrics.TierRemote)
			return &rec
		}
	}
	c.remoteTier(kindAchievements, appid, err)
	return nil
}

// Name returns the game's display name, falling back to "Game <id>".
func (c *Collector) Name(ctx context.Context, appid string) string {
	if o, ok := c.source.Overview(appid); ok && o.DisplayName != "" {
		c.recorder.RecordLookup(kindName, metrics.TierCache)
		return o.DisplayName
	}

	game, err := race(ctx, c.timeout, func(ctx context.Context) (library.OwnedGame, error) {
		return c.source.FetchOwnedGame(ctx, appid)
	})
	if err == nil && game.Name != "" {
		c.recorder.RecordLookup(kindName, metrics.TierRemote)
		return game.Name
	}
	c.remoteTier(kindName, appid, err)
	return library.FallbackName(appid)
}

// Records holds everything collected for one game.
type Records struct {
	AppID        string
	Playtime     library.PlaytimeRecord
	Achievements *library.AchievementRecord
	Name         string
}

// Collect runs the three adapters in order.
func (c *Collector) Collect(ctx context.Context, appid string) Records {
	return Records{
		AppID:        appid,
		Playtime:     c.Playtime(ctx, appid),
		Achievements: c.Achievements(ctx, appid),
		Name:         c.Name(ctx, appid),
	}
}
