package libsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"progress-tracker/core/library"
	"progress-tracker/core/metrics"
	"progress-tracker/core/rpc"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrListFailed is reported when the backend game list could not be read.
var ErrListFailed = errors.New("failed to get game list")

// ProgressFunc receives the 1-based index, the total and the name of the game
// about to be submitted.
type ProgressFunc func(current, total int, name string)

// SingleResult is the outcome of a one-game sync.
type SingleResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Orchestrator runs progressive syncs: discover, then collect and submit one
// game at a time.
type Orchestrator struct {
	backend    Backend
	discoverer *Discoverer
	collector  *Collector
	logger     *zap.Logger
	recorder   *metrics.Recorder

	group   singleflight.Group
	running atomic.Bool

	mu             sync.RWMutex
	lastDiscovered []string
}

// NewOrchestrator wires an orchestrator.
func NewOrchestrator(backend Backend, discoverer *Discoverer, collector *Collector, logger *zap.Logger, recorder *metrics.Recorder) *Orchestrator {
	return &Orchestrator{
		backend:    backend,
		discoverer: discoverer,
		collector:  collector,
		logger:     logger,
		recorder:   recorder,
	}
}

// Running reports whether a progressive sync is in progress.
func (o *Orchestrator) Running() bool {
	return o.running.Load()
}

// LastDiscovered returns the game set of the most recent run.
func (o *Orchestrator) LastDiscovered() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]string, len(o.lastDiscovered))
	copy(out, o.lastDiscovered)
	return out
}

// RunProgressive syncs every owned game. Concurrent calls share one run and
// its summary; only the first caller's onProgress is invoked. Per-game
// failures are counted, never returned. Success is false only when the game
// list could not be obtained or the run panicked.
func (o *Orchestrator) RunProgressive(ctx context.Context, onProgress ProgressFunc) library.SyncSummary {
	v, _, shared := o.group.Do("progressive", func() (any, error) {
		return o.run(ctx, onProgress), nil
	})
	if shared {
		o.logger.Debug("Joined in-flight progressive sync")
	}
	return v.(library.SyncSummary)
}

func (o *Orchestrator) run(ctx context.Context, onProgress ProgressFunc) (summary library.SyncSummary) {
	o.running.Store(true)
	o.recorder.SetInProgress(true)
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("Progressive sync panicked", zap.Any("panic", r))
			summary = library.Failed(fmt.Errorf("%v", r))
		}
		o.running.Store(false)
		o.recorder.SetInProgress(false)
		o.recorder.RecordRun(summary.Success)
	}()

	ids, err := o.entities(ctx)
	if err != nil {
		o.logger.Error("Progressive sync could not list games", zap.Error(err))
		return library.Failed(err)
	}
	o.remember(ids)

	total := len(ids)
	summary = library.SyncSummary{Success: true, Total: total}
	if total == 0 {
		o.logger.Info("Progressive sync found no games")
		return summary
	}

	o.logger.Info("Progressive sync started", zap.Int("total", total))
	for i, appid := range ids {
		outcome := o.syncOne(ctx, appid, i+1, total, onProgress)
		summary.Record(outcome)
		o.recorder.RecordEntity(string(outcome))
	}
	o.logger.Info("Progressive sync finished",
		zap.Int("total", summary.Total),
		zap.Int("synced", summary.Synced),
		zap.Int("new_tags", summary.NewTags),
		zap.Int("errors", summary.Errors),
	)
	return summary
}

func (o *Orchestrator) entities(ctx context.Context) ([]string, error) {
	settings, err := o.backend.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.UseAllOwned() {
		d, err := o.discoverer.DiscoverWithRetry(ctx)
		if err != nil {
			return nil, err
		}
		return d.IDs, nil
	}

	list, err := o.backend.GetAllGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get game list: %w", err)
	}
	if !list.Success || list.Games == nil {
		if list.Error != "" {
			return nil, errors.New(list.Error)
		}
		return nil, ErrListFailed
	}
	return backendIDs(list.Games), nil
}

func (o *Orchestrator) syncOne(ctx context.Context, appid string, current, total int, onProgress ProgressFunc) (outcome library.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn("Game sync panicked", zap.String("appid", appid), zap.Any("panic", r))
			outcome = library.OutcomeFailed
		}
	}()

	rec := o.collector.Collect(ctx, appid)

	if onProgress != nil {
		onProgress(current, total, rec.Name)
	}

	res, err := o.backend.SyncSingleGameWithData(ctx, rpc.SingleGameSync{
		AppID:           appid,
		GameData:        rec.Playtime,
		AchievementData: rec.Achievements,
		GameName:        rec.Name,
		IsBulkSync:      true,
		CurrentIndex:    current,
		TotalCount:      total,
	})
	switch {
	case err != nil:
		o.logger.Warn("Game sync failed", zap.String("appid", appid), zap.Int("current", current), zap.Error(err))
		return library.OutcomeFailed
	case !res.Success:
		o.logger.Warn("Game sync rejected", zap.String("appid", appid), zap.Int("current", current), zap.String("error", res.Error))
		return library.OutcomeFailed
	case res.TagChanged:
		return library.OutcomeTagChanged
	default:
		return library.OutcomeSynced
	}
}

func (o *Orchestrator) remember(ids []string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lastDiscovered = append(o.lastDiscovered[:0], ids...)
}

// SyncSingle collects and submits one game outside of a progressive run.
func (o *Orchestrator) SyncSingle(ctx context.Context, appid string) SingleResult {
	id, ok := library.ParseAppID(appid)
	if !ok {
		return SingleResult{Success: false, Error: fmt.Sprintf("invalid appid %q", appid)}
	}

	rec := o.collector.Collect(ctx, id)
	req := rpc.LibrarySync{
		GameData:        map[string]library.PlaytimeRecord{id: rec.Playtime},
		AchievementData: map[string]library.AchievementRecord{},
		GameNames:       map[string]string{id: rec.Name},
	}
	if rec.Achievements != nil {
		req.AchievementData[id] = *rec.Achievements
	}

	res, err := o.backend.SyncLibraryWithPlaytime(ctx, req)
	if err != nil {
		o.logger.Warn("Single game sync failed", zap.String("appid", id), zap.Error(err))
		return SingleResult{Success: false, Error: err.Error()}
	}
	return SingleResult{Success: res.Success, Error: res.Error}
}
