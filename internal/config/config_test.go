package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1000000, cfg.Records)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, 5, cfg.PreviewRows)
	assert.Equal(t, 64, cfg.SampleSize)
	assert.True(t, cfg.Verify)
	assert.Equal(t, 10, cfg.Trials)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Strategies)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DTBENCH_RECORDS", "2500")
	t.Setenv("DTBENCH_SEED", "7")
	t.Setenv("DTBENCH_TIMEZONE", "UTC")
	t.Setenv("DTBENCH_OUTPUT", "JSON")
	t.Setenv("DTBENCH_STRATEGIES", "explicit,inferred")
	t.Setenv("DTBENCH_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Records)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, []string{"explicit", "inferred"}, cfg.Strategies)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DTBENCH_RECORDS", "many")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from env")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Records: 10, SampleSize: 1, Trials: 1, Output: "table", LogFormat: "text"}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "negative records", mutate: func(c *Config) { c.Records = -1 }, wantErr: "records"},
		{name: "negative preview", mutate: func(c *Config) { c.PreviewRows = -2 }, wantErr: "preview"},
		{name: "zero sample", mutate: func(c *Config) { c.SampleSize = 0 }, wantErr: "sample size"},
		{name: "zero trials", mutate: func(c *Config) { c.Trials = 0 }, wantErr: "trials"},
		{name: "negative parallelism", mutate: func(c *Config) { c.Parallelism = -1 }, wantErr: "parallelism"},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }, wantErr: "output format"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "yaml" }, wantErr: "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
