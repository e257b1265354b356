package configs

// Config holds all configuration for the rollup job.
type Config struct {
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Storage   StorageConfig   `mapstructure:"storage" validate:"required"`
	Source    SourceConfig    `mapstructure:"source" validate:"required"`
	Summary   SummaryConfig   `mapstructure:"summary" validate:"required"`
	Warehouse WarehouseConfig `mapstructure:"warehouse" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// StorageConfig selects the object store backing both buckets.
type StorageConfig struct {
	Driver  string   `mapstructure:"driver" validate:"required,oneof=local s3"`
	RootDir string   `mapstructure:"root_dir" validate:"required_if=Driver local"`
	S3      S3Config `mapstructure:"s3"`
}

// S3Config holds S3 client settings. Endpoint and UsePathStyle target MinIO or LocalStack.
type S3Config struct {
	Region       string `mapstructure:"region"`
	Endpoint     string `mapstructure:"endpoint"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

// SourceConfig describes where raw event records live.
type SourceConfig struct {
	Bucket         string `mapstructure:"bucket" validate:"required"`
	HoursThreshold int    `mapstructure:"hours_threshold" validate:"min=0"`
}

// SummaryConfig describes where and how the hourly summary is published.
type SummaryConfig struct {
	Bucket string `mapstructure:"bucket" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=csv ndjson"`
}

// WarehouseConfig describes the analytical table store.
type WarehouseConfig struct {
	Driver            string `mapstructure:"driver" validate:"required,oneof=sqlite postgres"`
	DSN               string `mapstructure:"dsn" validate:"required"`
	Dataset           string `mapstructure:"dataset" validate:"required,sqlident"`
	Table             string `mapstructure:"table" validate:"required,sqlident"`
	StagingTable      string `mapstructure:"staging_table" validate:"required,sqlident,nefield=Table"`
	AddMissingColumns bool   `mapstructure:"add_missing_columns"`
}

// MetricsConfig holds Pushgateway settings for one-shot runs.
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url" validate:"omitempty,url"`
	Job            string `mapstructure:"job"`
}

// ServerConfig holds settings for the HTTP run trigger.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (a full run)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}
