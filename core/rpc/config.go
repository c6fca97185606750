package rpc

// Config holds configuration for the plugin backend connection.
type Config struct {
	// Endpoint is the base URL of the backend RPC server.
	Endpoint string `mapstructure:"endpoint" default:"http://127.0.0.1:8788"`
	// Token is sent as a bearer token with every call.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds bounds a single call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
