package config

import (
	"reflect"
	"strings"
	"time"

	"progress-tracker/core/database"
	"progress-tracker/core/logger"
	"progress-tracker/core/rpc"
	"progress-tracker/core/server"
	"progress-tracker/core/steamapi"
	"progress-tracker/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the local HTTP bridge.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// RPC holds configuration for the plugin backend connection.
	RPC rpc.Config `mapstructure:"rpc"`
	// Steam holds configuration for the Steam Web API (slow remote tier).
	Steam steamapi.Config `mapstructure:"steam"`
	// Sync holds timings for discovery, adapters and status polling.
	Sync SyncConfig `mapstructure:"sync"`
	// Database holds configuration for the run history database.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for snapshot import and report export.
	Storage storage.Config `mapstructure:"storage"`
	// Metrics holds configuration for the prometheus endpoint.
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// SyncConfig holds the timing knobs of the sync pipeline.
type SyncConfig struct {
	// RemoteTimeoutMS bounds every slow remote lookup made by the adapters.
	RemoteTimeoutMS int `mapstructure:"remote_timeout_ms" default:"5000"`
	// DiscoveryDelaysMS is the ascending retry schedule used while discovery is empty.
	DiscoveryDelaysMS []int `mapstructure:"discovery_delays_ms" default:"2000,3000,4000,5000,6000"`
	// StartupDelayMS is the wait before the automatic startup sync.
	StartupDelayMS int `mapstructure:"startup_delay_ms" default:"5000"`
	// StartupRetryDelayMS is the wait before the single startup retry.
	StartupRetryDelayMS int `mapstructure:"startup_retry_delay_ms" default:"10000"`
	// PollActiveMS is the status poll interval while a sync is running.
	PollActiveMS int `mapstructure:"poll_active_ms" default:"500"`
	// PollIdleMS is the status poll interval while idle.
	PollIdleMS int `mapstructure:"poll_idle_ms" default:"2000"`
	// MessageTTLMS is how long the completion message stays visible.
	MessageTTLMS int `mapstructure:"message_ttl_ms" default:"5000"`
	// SnapshotPath is an optional host cache snapshot file loaded at startup.
	SnapshotPath string `mapstructure:"snapshot_path" default:""`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	// Enabled exposes /metrics on the bridge.
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// RemoteTimeout returns the adapter remote timeout as a duration.
func (c SyncConfig) RemoteTimeout() time.Duration {
	return millis(c.RemoteTimeoutMS)
}

// DiscoveryDelays returns the discovery retry schedule as durations.
func (c SyncConfig) DiscoveryDelays() []time.Duration {
	delays := make([]time.Duration, 0, len(c.DiscoveryDelaysMS))
	for _, ms := range c.DiscoveryDelaysMS {
		if ms > 0 {
			delays = append(delays, millis(ms))
		}
	}
	return delays
}

// StartupDelay returns the delay before the automatic startup sync.
func (c SyncConfig) StartupDelay() time.Duration { return millis(c.StartupDelayMS) }

// StartupRetryDelay returns the delay before the startup retry.
func (c SyncConfig) StartupRetryDelay() time.Duration { return millis(c.StartupRetryDelayMS) }

// PollActive returns the status poll interval while syncing.
func (c SyncConfig) PollActive() time.Duration { return millis(c.PollActiveMS) }

// PollIdle returns the status poll interval while idle.
func (c SyncConfig) PollIdle() time.Duration { return millis(c.PollIdleMS) }

// MessageTTL returns how long the completion message is shown.
func (c SyncConfig) MessageTTL() time.Duration { return millis(c.MessageTTLMS) }

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SYNC_REMOTE_TIMEOUT_MS -> sync.remote_timeout_ms)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
