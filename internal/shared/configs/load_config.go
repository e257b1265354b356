package configs

import (
	"fmt"
	"strings"

	"event-rollup/internal/shared/validators"

	"github.com/spf13/viper"
)

// setting binds a config key to its default and the environment variables that can set it.
// The first env name wins when several are set.
type setting struct {
	key      string
	def      any
	envNames []string
}

var settings = []setting{
	{"log.level", "info", []string{"LOG_LEVEL"}},

	{"storage.driver", "local", []string{"STORAGE_DRIVER"}},
	{"storage.root_dir", "./data", []string{"STORAGE_ROOT_DIR"}},
	{"storage.s3.region", "us-east-1", []string{"S3_REGION", "AWS_REGION"}},
	{"storage.s3.endpoint", "", []string{"S3_ENDPOINT"}},
	{"storage.s3.use_path_style", false, []string{"S3_USE_PATH_STYLE"}},

	{"source.bucket", "event-data-raw", []string{"SOURCE_BUCKET"}},
	{"source.hours_threshold", 0, []string{"HOURS_THRESHOLD"}},

	{"summary.bucket", "event-data-summary", []string{"SUMMARY_BUCKET"}},
	{"summary.format", "csv", []string{"SUMMARY_FORMAT"}},

	{"warehouse.driver", "sqlite", []string{"WAREHOUSE_DRIVER"}},
	{"warehouse.dsn", "file:./data/warehouse.db", []string{"WAREHOUSE_DSN"}},
	{"warehouse.dataset", "platform_event_data", []string{"WAREHOUSE_DATASET", "BIGQUERY_DATASET"}},
	{"warehouse.table", "event_hourly_summary", []string{"WAREHOUSE_TABLE", "BIGQUERY_TABLE"}},
	{"warehouse.staging_table", "event_hourly_summary_staging", []string{"WAREHOUSE_STAGING_TABLE", "BIGQUERY_STG_TABLE"}},
	{"warehouse.add_missing_columns", false, []string{"WAREHOUSE_ADD_MISSING_COLUMNS"}},

	{"metrics.pushgateway_url", "", []string{"METRICS_PUSHGATEWAY_URL"}},
	{"metrics.job", "event_rollup", []string{"METRICS_JOB"}},

	{"server.port", 8080, []string{"SERVER_PORT", "PORT"}},
	{"server.read_header_timeout", 5, []string{"SERVER_READ_HEADER_TIMEOUT"}},
	{"server.read_timeout", 10, []string{"SERVER_READ_TIMEOUT"}},
	{"server.write_timeout", 300, []string{"SERVER_WRITE_TIMEOUT"}},
	{"server.idle_timeout", 60, []string{"SERVER_IDLE_TIMEOUT"}},
}

// LoadConfig builds the configuration from defaults, an optional YAML file and environment
// variables (highest precedence), then validates it. An empty configPath skips the file.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()

	for _, s := range settings {
		v.SetDefault(s.key, s.def)
		if err := v.BindEnv(append([]string{s.key}, s.envNames...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %q: %w", s.key, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Warehouse.StagingTable" -> "warehouse.stagingtable"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required", "required_if":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof", "nefield":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	case validators.TagSQLIdent:
		return fmt.Sprintf("%s (must be a plain SQL identifier)", field)
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
