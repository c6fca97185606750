// Package libsync synchronizes the owned library with the plugin backend.
//
// A progressive sync discovers every owned game and then handles one game at a
// time: playtime, achievements and name are collected (host cache first, then a
// remote lookup bounded by a timeout), progress is reported, and the game is
// submitted. A failing game is counted and skipped.
//
// # Components
//
//   - Discoverer: ordered discovery strategies, retried on a fixed schedule,
//     with the backend game list as a degraded fallback.
//   - Collector: the three per-game adapters.
//   - Orchestrator: the progressive loop and single-game sync.
//   - Reconciler: polls backend progress to keep the status display honest.
//   - AutoSync: one sync after startup with a single retry.
//
// # HTTP Endpoints
//
//   - POST /sync : Sync the whole library.
//   - POST /sync/:appid : Sync one game.
//   - GET /sync/status : Status display state.
package libsync
