package libsync

import (
	"context"
	"time"

	"progress-tracker/core/library"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Sync triggers, recorded with every run.
const (
	TriggerManual       = "manual"
	TriggerStartup      = "startup"
	TriggerStartupRetry = "startup_retry"
	TriggerPageView     = "page_view"
	TriggerCLI          = "cli"
)

// Journal records finished runs.
type Journal interface {
	Record(ctx context.Context, run library.SyncRun) error
}

// Service ties the orchestrator to the status display, toasts and run history.
type Service struct {
	orchestrator *Orchestrator
	reconciler   *Reconciler
	toasts       *ToastBoard
	journal      Journal
	logger       *zap.Logger
	group        singleflight.Group
}

// NewService creates a sync service. journal may be nil.
func NewService(orchestrator *Orchestrator, reconciler *Reconciler, toasts *ToastBoard, journal Journal, logger *zap.Logger) *Service {
	return &Service{
		orchestrator: orchestrator,
		reconciler:   reconciler,
		toasts:       toasts,
		journal:      journal,
		logger:       logger,
	}
}

// Sync runs a progressive sync and records it. A call made while a run is in
// flight joins it and gets the same summary; the run is recorded once.
func (s *Service) Sync(ctx context.Context, trigger string, onProgress ProgressFunc) library.SyncSummary {
	v, _, _ := s.group.Do("sync", func() (any, error) {
		started := time.Now().UTC()
		s.reconciler.BeginLocal()
		s.reconciler.SetWaitingForBackend(true)

		summary := s.orchestrator.RunProgressive(ctx, func(current, total int, name string) {
			s.reconciler.Progress(current, total, name)
			if onProgress != nil {
				onProgress(current, total, name)
			}
		})

		s.reconciler.EndLocal(summary)
		s.record(ctx, trigger, started, summary)
		return summary, nil
	})
	return v.(library.SyncSummary)
}

// SyncGame syncs a single game and records it.
func (s *Service) SyncGame(ctx context.Context, appid, trigger string) SingleResult {
	started := time.Now().UTC()
	res := s.orchestrator.SyncSingle(ctx, appid)

	summary := library.SyncSummary{Success: res.Success, Total: 1, Error: res.Error}
	if res.Success {
		summary.Record(library.OutcomeSynced)
	} else {
		summary.Record(library.OutcomeFailed)
	}
	s.record(ctx, trigger, started, summary)
	return res
}

func (s *Service) record(ctx context.Context, trigger string, started time.Time, summary library.SyncSummary) {
	if s.journal == nil {
		return
	}
	run := library.SyncRun{
		ID:         uuid.NewString(),
		Trigger:    trigger,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		Summary:    summary,
	}
	if err := s.journal.Record(context.WithoutCancel(ctx), run); err != nil {
		s.logger.Warn("Failed to record sync run", zap.String("run_id", run.ID), zap.Error(err))
	}
}

// StatusReport is what the UI polls.
type StatusReport struct {
	Status
	Running        bool   `json:"running"`
	LastDiscovered int    `json:"last_discovered"`
	Toast          *Toast `json:"toast,omitempty"`
}

// Status returns the current sync status.
func (s *Service) Status() StatusReport {
	report := StatusReport{
		Status:         s.reconciler.Status(),
		Running:        s.orchestrator.Running(),
		LastDiscovered: len(s.orchestrator.LastDiscovered()),
	}
	if s.toasts != nil {
		if t, ok := s.toasts.Latest(); ok {
			report.Toast = &t
		}
	}
	return report
}
