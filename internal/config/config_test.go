package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracetutor/internal/tutor"
)

// isolate points the user config/cache dirs at a temp dir and clears
// overrides so the developer's environment does not leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("HOME", dir)
	for _, k := range []string{
		"TRACETUTOR_DARK_MODE", "TRACETUTOR_LOG_FILE", "TRACETUTOR_LOG_LEVEL",
		"TRACETUTOR_CATALOG", "TRACETUTOR_MOCK_MIN_DELAY", "TRACETUTOR_MOCK_MAX_DELAY",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.DarkMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, tutor.DefaultMinDelay, cfg.Mock.MinDelay)
	assert.Equal(t, tutor.DefaultMaxDelay, cfg.Mock.MaxDelay)
	assert.Equal(t, "tracetutor.log", filepath.Base(cfg.LogFile))
	assert.Empty(t, cfg.Trace.Endpoint)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "tt.yaml", `
dark_mode: true
log_level: debug
catalog: /tmp/catalog.yaml
mock:
  min_delay: 100ms
  max_delay: 250ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, 100*time.Millisecond, cfg.Mock.MinDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.Mock.MaxDelay)
}

func TestLoad_DefaultPathIsRead(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "tracetutor")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	writeFile(t, cfgDir, "config.yaml", "dark_mode: true\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.DarkMode)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "empty.yaml", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_UnknownField(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "bad.yaml", "darkmode: true\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "tt.yaml", "dark_mode: false\nlog_level: warn\n")
	t.Setenv("TRACETUTOR_DARK_MODE", "true")
	t.Setenv("TRACETUTOR_LOG_LEVEL", "error")
	t.Setenv("TRACETUTOR_LOG_FILE", "/var/tmp/tt.log")
	t.Setenv("TRACETUTOR_CATALOG", "custom.yaml")
	t.Setenv("TRACETUTOR_MOCK_MIN_DELAY", "0s")
	t.Setenv("TRACETUTOR_MOCK_MAX_DELAY", "10ms")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "/var/tmp/tt.log", cfg.LogFile)
	assert.Equal(t, "custom.yaml", cfg.CatalogPath)
	assert.Equal(t, time.Duration(0), cfg.Mock.MinDelay)
	assert.Equal(t, 10*time.Millisecond, cfg.Mock.MaxDelay)
	assert.Equal(t, "collector:4318", cfg.Trace.Endpoint)
}

func TestLoad_BadEnvValues(t *testing.T) {
	tests := map[string]string{
		"TRACETUTOR_DARK_MODE":      "sometimes",
		"TRACETUTOR_MOCK_MIN_DELAY": "soon",
		"TRACETUTOR_MOCK_MAX_DELAY": "later",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv(key, val)
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Mock.MinDelay, cfg.Mock.MaxDelay = 2*time.Second, time.Second
	assert.ErrorContains(t, cfg.Validate(), "shorter than min_delay")

	cfg = Default()
	cfg.Mock.MinDelay = -time.Second
	assert.ErrorContains(t, cfg.Validate(), "must not be negative")

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.ErrorContains(t, cfg.Validate(), `unknown log level "loud"`)
}
