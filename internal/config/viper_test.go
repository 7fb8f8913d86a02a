package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for the local Go 1.21 toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

func TestInitializeConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "buckets.yaml", cfg.Mapping.File)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CENTS_LOG_LEVEL", "debug")
	t.Setenv("CENTS_CSV_DELIMITER", ";")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
}

func TestValidateConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "nope"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	assert.Error(t, validateConfig(cfg), "invalid log level is rejected")

	cfg.Log.Level = "info"
	cfg.Log.Format = "xml"
	assert.Error(t, validateConfig(cfg), "invalid log format is rejected")

	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(cfg), "multi-rune delimiter is rejected")

	cfg.CSV.Delimiter = ";"
	assert.NoError(t, validateConfig(cfg))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CENTS_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("CENTS_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CENTS_TEST_MISSING", "fallback"))
}
