// Package server holds the HTTP bridge configuration.
//
// The bridge is the local HTTP surface the host UI talks to: it receives cache
// snapshots and route changes, and triggers syncs. The main entry point (cmd/start.go)
// owns the Fiber app; this package only defines how it is configured.
//
// # Configuration
//
// The Config struct defines the bind host, port, API key and whether the delayed
// startup sync runs.
package server
