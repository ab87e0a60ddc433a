// Package config loads benchmark defaults from DTBENCH_* environment
// variables. Command-line flags override whatever is loaded here.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "DTBENCH"

// Output formats
const (
	OutputTable   = "table"
	OutputJSON    = "json"
	OutputCSV     = "csv"
	OutputSummary = "summary"
)

// Config is the complete run configuration
type Config struct {
	Records     int      `envconfig:"RECORDS" default:"1000000"`
	Seed        int64    `envconfig:"SEED" default:"42"`
	Timezone    string   `envconfig:"TIMEZONE" default:"Local"`
	Output      string   `envconfig:"OUTPUT" default:"table"`
	PreviewRows int      `envconfig:"PREVIEW_ROWS" default:"5"`
	SampleSize  int      `envconfig:"SAMPLE_SIZE" default:"64"`
	Strategies  []string `envconfig:"STRATEGIES"`
	Verify      bool     `envconfig:"VERIFY" default:"true"`
	Trials      int      `envconfig:"TRIALS" default:"10"`
	Parallelism int      `envconfig:"PARALLELISM" default:"0"`
	ExportPath  string   `envconfig:"EXPORT"`
	MetricsPath string   `envconfig:"METRICS_FILE"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string   `envconfig:"LOG_FILE"`
	LogFormat   string   `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if c.Records < 0 {
		return fmt.Errorf("records must be non-negative, got %d", c.Records)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("preview rows must be non-negative, got %d", c.PreviewRows)
	}
	if c.SampleSize < 1 {
		return fmt.Errorf("sample size must be positive, got %d", c.SampleSize)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must be non-negative, got %d", c.Parallelism)
	}

	switch strings.ToLower(c.Output) {
	case OutputTable, OutputJSON, OutputCSV, OutputSummary:
		c.Output = strings.ToLower(c.Output)
	default:
		return fmt.Errorf("unsupported output format %q (table, json, csv, summary)", c.Output)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
		c.LogFormat = strings.ToLower(c.LogFormat)
	default:
		return fmt.Errorf("unsupported log format %q (text, json)", c.LogFormat)
	}
	return nil
}
