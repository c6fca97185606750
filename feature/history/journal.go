package history

import (
	"context"
	"errors"

	"progress-tracker/core/library"

	"go.uber.org/zap"
)

// Journal records runs in the store and exports them when an exporter is set.
type Journal struct {
	store    *Store
	exporter *Exporter
	logger   *zap.Logger
}

// NewJournal creates a journal. Either store or exporter may be nil.
func NewJournal(store *Store, exporter *Exporter, logger *zap.Logger) *Journal {
	return &Journal{store: store, exporter: exporter, logger: logger}
}

// Record stores and exports a finished run.
func (j *Journal) Record(ctx context.Context, run library.SyncRun) error {
	var errs []error
	if j.store != nil {
		if err := j.store.Save(ctx, run); err != nil {
			errs = append(errs, err)
		}
	}
	if j.exporter != nil {
		if err := j.exporter.Export(ctx, run); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		j.logger.Debug("Recorded sync run", zap.String("run_id", run.ID), zap.String("trigger", run.Trigger))
	}
	return errors.Join(errs...)
}
