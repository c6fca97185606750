// Package hostcache holds captures of the host application's in-memory caches.
//
// The host pushes its owned-app listing, collections, app map keys, per-game
// overviews and achievement progress to the bridge. The Store keeps the latest
// capture and Source exposes it, together with the Steam Web API as the slow
// remote tier, as the data source of the sync pipeline.
//
// # HTTP Endpoints
//
//   - GET /hostcache/snapshot : Entry counts of the current capture.
//   - PUT /hostcache/snapshot : Replace the capture.
//   - PUT /hostcache/overviews/:appid : Update one overview.
//   - PUT /hostcache/achievements/:appid : Update one achievement progress entry.
package hostcache
