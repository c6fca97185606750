package history

import (
	"context"
	"fmt"

	"progress-tracker/core/library"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 20
	maxLimit     = 500
)

// Store persists sync runs.
type Store struct {
	db *gorm.DB
}

// NewStore creates a run store over an open database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the sync_runs table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate sync_runs: %w", err)
	}
	return nil
}

// Save inserts a finished run.
func (s *Store) Save(ctx context.Context, run library.SyncRun) error {
	row := fromSyncRun(run)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save sync run %s: %w", run.ID, err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]library.SyncRun, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var rows []Run
	if err := s.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}

	runs := make([]library.SyncRun, len(rows))
	for i, r := range rows {
		runs[i] = r.SyncRun()
	}
	return runs, nil
}
