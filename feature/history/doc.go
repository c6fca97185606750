// Package history keeps a journal of finished sync runs.
//
// Runs are stored in the sync_runs table through gorm and listed at
// GET /history. When object storage is enabled each run is also exported as a
// JSON report and the oldest reports beyond the retention count are removed.
package history
