package libsync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"progress-tracker/core/library"

	"go.uber.org/zap"
)

// Toast is a one-shot user notification.
type Toast struct {
	Message   string        `json:"message"`
	Duration  time.Duration `json:"-"`
	At        time.Time     `json:"at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Notifier delivers toasts to the user.
type Notifier interface {
	Notify(t Toast)
}

// ToastBoard keeps the latest toast until it expires.
type ToastBoard struct {
	mu     sync.RWMutex
	latest *Toast
	now    func() time.Time
}

// NewToastBoard creates an empty board.
func NewToastBoard() *ToastBoard {
	return &ToastBoard{now: time.Now}
}

// Notify implements Notifier.
func (b *ToastBoard) Notify(t Toast) {
	if t.At.IsZero() {
		t.At = b.now()
	}
	t.ExpiresAt = t.At.Add(t.Duration)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.latest = &t
}

// Latest returns the current toast if it has not expired.
func (b *ToastBoard) Latest() (Toast, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.latest == nil || b.now().After(b.latest.ExpiresAt) {
		return Toast{}, false
	}
	return *b.latest, true
}

// LogNotifier writes toasts to a logger.
type LogNotifier struct {
	Logger *zap.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(t Toast) {
	n.Logger.Info(t.Message)
}

// Notifiers fans a toast out to several notifiers.
type Notifiers []Notifier

// Notify implements Notifier.
func (ns Notifiers) Notify(t Toast) {
	for _, n := range ns {
		n.Notify(t)
	}
}

// Runner triggers a progressive sync.
type Runner interface {
	Sync(ctx context.Context, trigger string, onProgress ProgressFunc) library.SyncSummary
}

// AutoSyncConfig holds startup sync timing.
type AutoSyncConfig struct {
	Delay      time.Duration
	RetryDelay time.Duration
}

// AutoSync runs one sync shortly after startup and retries it once on failure.
type AutoSync struct {
	runner   Runner
	notifier Notifier
	cfg      AutoSyncConfig
	logger   *zap.Logger
}

// NewAutoSync creates the startup sync job.
func NewAutoSync(runner Runner, notifier Notifier, cfg AutoSyncConfig, logger *zap.Logger) *AutoSync {
	return &AutoSync{runner: runner, notifier: notifier, cfg: cfg, logger: logger}
}

// Run waits for the startup delay, syncs, and on failure retries once after
// the retry delay. It returns the last summary, or a failed one when the
// context ends first.
func (a *AutoSync) Run(ctx context.Context) library.SyncSummary {
	a.logger.Info("Scheduling initial sync", zap.Duration("delay", a.cfg.Delay))
	if err := sleep(ctx, a.cfg.Delay); err != nil {
		return library.Failed(err)
	}

	result := a.runner.Sync(ctx, TriggerStartup, a.logProgress("Initial sync progress"))
	if result.Success {
		if result.Synced > 0 {
			a.notify(startupMessage(result), 5*time.Second)
		}
		return result
	}

	a.logger.Warn("Initial sync failed, will retry", zap.String("error", result.Error), zap.Duration("delay", a.cfg.RetryDelay))
	a.notify(fmt.Sprintf("Initial sync failed: %s. Will retry...", result.Error), 5*time.Second)
	if err := sleep(ctx, a.cfg.RetryDelay); err != nil {
		return library.Failed(err)
	}

	retry := a.runner.Sync(ctx, TriggerStartupRetry, a.logProgress("Retry sync progress"))
	if retry.Success && retry.Synced > 0 {
		a.notify(fmt.Sprintf("Library synced: %d games processed", retry.Synced), 5*time.Second)
	} else {
		a.logger.Warn("Retry sync failed", zap.String("error", retry.Error))
		a.notify("Auto-sync failed. Please sync manually from settings.", 8*time.Second)
	}
	return retry
}

func startupMessage(s library.SyncSummary) string {
	if s.NewTags == 0 {
		return fmt.Sprintf("Synced %d games. Open plugin to see your library.", s.Synced)
	}
	noun := "tag"
	if s.NewTags > 1 {
		noun = "tags"
	}
	return fmt.Sprintf("Synced %d games. %d new %s added!", s.Synced, s.NewTags, noun)
}

func (a *AutoSync) notify(msg string, d time.Duration) {
	if a.notifier != nil {
		a.notifier.Notify(Toast{Message: msg, Duration: d})
	}
}

func (a *AutoSync) logProgress(msg string) ProgressFunc {
	return func(current, total int, name string) {
		if current%50 == 0 || current == total {
			a.logger.Info(msg, zap.Int("current", current), zap.Int("total", total), zap.String("name", name))
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
