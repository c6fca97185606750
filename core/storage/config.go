package storage

// Config holds configuration for the object storage provider.
type Config struct {
	// Enabled turns snapshot import and report export on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket holding snapshots and reports.
	Bucket string `mapstructure:"bucket" default:"progress-tracker"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// SnapshotObject is the object holding the host cache snapshot.
	SnapshotObject string `mapstructure:"snapshot_object" default:"snapshots/library.json"`
	// ReportPrefix is the prefix under which sync reports are exported.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports/"`
	// ReportRetention is how many exported reports are kept. Zero keeps all.
	ReportRetention int `mapstructure:"report_retention" default:"50"`
}
