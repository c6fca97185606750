package history

import (
	"time"

	"progress-tracker/core/library"
)

// Run is the sync_runs table.
type Run struct {
	ID         string    `gorm:"column:id;primaryKey;size:36"`
	Trigger    string    `gorm:"column:trigger_name;size:32;index"`
	StartedAt  time.Time `gorm:"column:started_at;index"`
	FinishedAt time.Time `gorm:"column:finished_at"`
	DurationMs int64     `gorm:"column:duration_ms"`
	Success    bool      `gorm:"column:success"`
	Total      int       `gorm:"column:total"`
	Synced     int       `gorm:"column:synced"`
	NewTags    int       `gorm:"column:new_tags"`
	Errors     int       `gorm:"column:errors"`
	Error      string    `gorm:"column:error;size:512"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return "sync_runs"
}

func fromSyncRun(r library.SyncRun) Run {
	return Run{
		ID:         r.ID,
		Trigger:    r.Trigger,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		DurationMs: r.Duration().Milliseconds(),
		Success:    r.Summary.Success,
		Total:      r.Summary.Total,
		Synced:     r.Summary.Synced,
		NewTags:    r.Summary.NewTags,
		Errors:     r.Summary.Errors,
		Error:      r.Summary.Error,
	}
}

// SyncRun converts the row back to the domain type.
func (r Run) SyncRun() library.SyncRun {
	return library.SyncRun{
		ID:         r.ID,
		Trigger:    r.Trigger,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Summary: library.SyncSummary{
			Success: r.Success,
			Total:   r.Total,
			Synced:  r.Synced,
			NewTags: r.NewTags,
			Errors:  r.Errors,
			Error:   r.Error,
		},
	}
}
