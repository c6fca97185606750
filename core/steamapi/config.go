package steamapi

// Config holds Steam Web API configuration.
type Config struct {
	// APIEndpoint is the Steam Web API base URL.
	APIEndpoint string `mapstructure:"api_endpoint" default:"https://api.steampowered.com"`
	// APIKey is the Steam Web API key. Remote lookups are disabled when empty.
	APIKey string `mapstructure:"api_key" default:""`
	// SteamID is the 64-bit id of the library owner.
	SteamID string `mapstructure:"steam_id" default:""`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Configured reports whether remote lookups can be made.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.SteamID != ""
}
