package libsync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"progress-tracker/core/library"
	"progress-tracker/core/rpc"

	"go.uber.org/zap"
)

// Messages shown by the status display.
const (
	MessageStarting = "Starting sync..."
	MessageComplete = "Sync complete! Library updated."
)

const (
	defaultActiveInterval = 500 * time.Millisecond
	defaultIdleInterval   = 2 * time.Second
	defaultMessageTTL     = 5 * time.Second
)

// ProgressSource reports the backend's view of the current sync.
type ProgressSource interface {
	GetSyncProgress(ctx context.Context) (rpc.SyncProgress, error)
}

// Status is a point-in-time view of the sync indicator.
type Status struct {
	Syncing           bool      `json:"syncing"`
	Current           int       `json:"current"`
	Total             int       `json:"total"`
	Message           string    `json:"message,omitempty"`
	WaitingForBackend bool      `json:"waiting_for_backend"`
	LastPoll          time.Time `json:"last_poll"`
	LastError         string    `json:"last_error,omitempty"`
}

// ReconcilerConfig holds poll timing.
type ReconcilerConfig struct {
	ActiveInterval time.Duration
	IdleInterval   time.Duration
	MessageTTL     time.Duration
	// ResultTTL is how long the result of a local run stays visible.
	ResultTTL time.Duration
}

// Reconciler keeps the local "syncing" flag in line with the backend. It polls
// fast while syncing and slowly otherwise, so runs started elsewhere still
// show up.
type Reconciler struct {
	source ProgressSource
	cfg    ReconcilerConfig
	logger *zap.Logger
	now    func() time.Time

	onComplete func()

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	mu         sync.RWMutex
	status     Status
	messageGen uint64
	// local is set between BeginLocal and EndLocal. Only EndLocal ends a
	// local run.
	local bool
}

// NewReconciler creates a reconciler. Zero config values select defaults.
func NewReconciler(source ProgressSource, cfg ReconcilerConfig, logger *zap.Logger) *Reconciler {
	if cfg.ActiveInterval <= 0 {
		cfg.ActiveInterval = defaultActiveInterval
	}
	if cfg.IdleInterval <= 0 {
		cfg.IdleInterval = defaultIdleInterval
	}
	if cfg.MessageTTL <= 0 {
		cfg.MessageTTL = defaultMessageTTL
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 2 * cfg.MessageTTL
	}
	return &Reconciler{
		source: source,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		done:   make(chan struct{}),
	}
}

// OnComplete registers a hook run when the backend reports a finished sync.
func (r *Reconciler) OnComplete(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onComplete = fn
}

// Status returns the current indicator state.
func (r *Reconciler) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// Interval returns the delay before the next poll.
func (r *Reconciler) Interval() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.status.Syncing {
		return r.cfg.ActiveInterval
	}
	return r.cfg.IdleInterval
}

// Start polls until the context is cancelled or Stop is called.
func (r *Reconciler) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	go func() {
		r.logger.Info("Sync status reconciler started")
		timer := time.NewTimer(r.Interval())
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Sync status reconciler stopped")
				return
			case <-r.done:
				r.logger.Info("Sync status reconciler stopped")
				return
			case <-timer.C:
				if err := r.Poll(ctx); err != nil {
					r.logger.Debug("Sync progress poll failed", zap.Error(err))
				}
				timer.Reset(r.Interval())
			}
		}
	}()
}

// Stop halts the polling loop.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
	})
}

// Poll queries the backend once and applies the transition rules.
func (r *Reconciler) Poll(ctx context.Context) error {
	progress, err := r.source.GetSyncProgress(ctx)

	r.mu.Lock()
	r.status.LastPoll = r.now()
	if err != nil {
		r.status.LastError = err.Error()
		r.mu.Unlock()
		return err
	}
	r.status.LastError = ""

	if !progress.Success {
		r.mu.Unlock()
		return nil
	}

	if progress.Syncing {
		r.status.Syncing = true
		r.status.WaitingForBackend = false
		r.status.Current = progress.Current
		r.status.Total = progress.Total
		r.setMessageLocked(fmt.Sprintf("Syncing: %d/%d games", progress.Current, progress.Total), 0)
		r.mu.Unlock()
		return nil
	}

	if !r.status.Syncing || r.status.WaitingForBackend || r.local {
		r.mu.Unlock()
		return nil
	}

	r.status.Syncing = false
	r.status.Current = 0
	r.status.Total = 0
	hook := r.onComplete
	if progress.Total > 0 {
		r.setMessageLocked(MessageComplete, r.cfg.MessageTTL)
	}
	r.mu.Unlock()

	r.logger.Info("Backend sync finished", zap.Int("total", progress.Total))
	if hook != nil {
		hook()
	}
	return nil
}

// SetWaitingForBackend marks that a local run is still collecting data and the
// backend has not picked it up yet.
func (r *Reconciler) SetWaitingForBackend(waiting bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status.WaitingForBackend = waiting
}

// BeginLocal marks the start of a run triggered from this process.
func (r *Reconciler) BeginLocal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.local = true
	r.status.Syncing = true
	r.status.WaitingForBackend = false
	r.status.Current = 0
	r.status.Total = 0
	r.setMessageLocked(MessageStarting, 0)
}

// Progress reports the game a local run is about to submit. Data collection
// is over once the first submit goes out.
func (r *Reconciler) Progress(current, total int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status.WaitingForBackend = false
	r.status.Current = current
	r.status.Total = total
	if name != "" {
		r.setMessageLocked(fmt.Sprintf("Syncing %d/%d: %s", current, total, name), 0)
		return
	}
	r.setMessageLocked(fmt.Sprintf("Syncing %d/%d games...", current, total), 0)
}

// EndLocal records the result of a local run.
func (r *Reconciler) EndLocal(summary library.SyncSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.local = false
	r.status.Syncing = false
	r.status.WaitingForBackend = false
	r.status.Current = 0
	r.status.Total = 0
	r.setMessageLocked(ResultMessage(summary), r.cfg.ResultTTL)
}

// ResultMessage describes the result of a local run.
func ResultMessage(summary library.SyncSummary) string {
	if !summary.Success {
		return "Sync error: " + summary.Error
	}
	msg := fmt.Sprintf("Sync complete! %d games updated", summary.Synced)
	if summary.NewTags > 0 {
		msg += fmt.Sprintf(", %d new tags", summary.NewTags)
	}
	return msg + "."
}

// setMessageLocked sets the status message. A positive ttl clears it later
// unless another message replaced it in the meantime.
func (r *Reconciler) setMessageLocked(msg string, ttl time.Duration) {
	r.messageGen++
	r.status.Message = msg
	if ttl <= 0 {
		return
	}
	gen := r.messageGen
	time.AfterFunc(ttl, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.messageGen == gen {
			r.status.Message = ""
		}
	})
}
