// Package library holds the request-scoped records exchanged between the data source,
// the sync orchestrator and the backend: playtime and achievement snapshots, per-game
// outcomes, run summaries and tag values. Nothing here is cached or persisted.
package library
