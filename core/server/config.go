package server

// Config holds configuration for the HTTP bridge server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8787"`
	// Host is the interface the server binds to. The bridge is meant for the local host UI.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// AutoSync enables the delayed library sync when the bridge starts.
	AutoSync bool `mapstructure:"auto_sync" default:"true"`
}

// Address returns the listen address for the server.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}
