// Package config provides configuration management for the progress tracker bridge.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults are declared next to each field through `default`
// struct tags and registered reflectively, so every key can be overridden from the
// environment (SYNC_REMOTE_TIMEOUT_MS -> sync.remote_timeout_ms).
//
// # Configuration Structure
//
//   - Server: bridge bind address, API key, startup auto-sync
//   - Log: logging level and format
//   - RPC: plugin backend endpoint and token
//   - Steam: Steam Web API credentials used as the slow remote tier
//   - Sync: adapter timeout, discovery retry schedule, status poll intervals
//   - Database: run history database (sqlite or mysql)
//   - Storage: S3/MinIO snapshot import and report export
//   - Metrics: prometheus endpoint toggle
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.RemoteTimeout())
package config
