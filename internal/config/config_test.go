package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ShortfallPad, cfg.Survey.ShortfallPolicy)
	assert.True(t, cfg.Survey.IncludePlaceholders)
	assert.Equal(t, 10, cfg.Survey.MinQuestionLength)
	assert.Equal(t, "Guest", cfg.Survey.DefaultName)
	assert.Equal(t, "local", cfg.Storage.Type)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9000"
  mode: "test"
survey:
  source: "questions.csv"
  shortfall_policy: "error"
  include_placeholders: false
  min_question_length: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "questions.csv", cfg.Survey.Source)
	assert.Equal(t, ShortfallError, cfg.Survey.ShortfallPolicy)
	assert.False(t, cfg.Survey.IncludePlaceholders)
	assert.Equal(t, 4, cfg.Survey.MinQuestionLength)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SURVEY_SHORTFALL_POLICY", "error")
	t.Setenv("STORAGE_TYPE", "minio")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ShortfallError, cfg.Survey.ShortfallPolicy)
	assert.Equal(t, "minio", cfg.Storage.Type)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	cases := map[string]func(*Config){
		"policy":     func(c *Config) { c.Survey.ShortfallPolicy = "drop" },
		"min length": func(c *Config) { c.Survey.MinQuestionLength = -1 },
		"source":     func(c *Config) { c.Survey.Source = " " },
		"storage":    func(c *Config) { c.Storage.Type = "s3" },
		"rate limit": func(c *Config) { c.RateLimit.MaxRequests = 0 },
		"mode":       func(c *Config) { c.Server.Mode = "prod" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, valid().Validate())
}
