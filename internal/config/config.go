// Package config loads TraceTutor settings from an optional YAML file,
// a .env file and TRACETUTOR_* environment variables, in increasing order
// of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tracetutor/internal/trace"
	"tracetutor/internal/tutor"
)

const appName = "tracetutor"

// Config is the resolved configuration.
type Config struct {
	DarkMode    bool       `yaml:"dark_mode"`
	LogFile     string     `yaml:"log_file"`
	LogLevel    string     `yaml:"log_level"`
	CatalogPath string     `yaml:"catalog"` // optional YAML override of the built-in catalog
	Mock        MockConfig `yaml:"mock"`

	Trace trace.Config `yaml:"-"`
}

// MockConfig tunes the stand-in completer.
type MockConfig struct {
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogFile:  DefaultLogFile(),
		LogLevel: "info",
		Mock: MockConfig{
			MinDelay: tutor.DefaultMinDelay,
			MaxDelay: tutor.DefaultMaxDelay,
		},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, appName, "config.yaml")
}

// DefaultLogFile is the log destination when none is configured.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName, appName+".log")
}

// Load resolves the configuration. An empty path means DefaultPath, which
// may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("config %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no file; defaults apply
	default:
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Trace = trace.ConfigFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("TRACETUTOR_DARK_MODE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TRACETUTOR_DARK_MODE: %w", err)
		}
		cfg.DarkMode = b
	}
	if v := strings.TrimSpace(os.Getenv("TRACETUTOR_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TRACETUTOR_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TRACETUTOR_CATALOG")); v != "" {
		cfg.CatalogPath = v
	}
	if v := strings.TrimSpace(os.Getenv("TRACETUTOR_MOCK_MIN_DELAY")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TRACETUTOR_MOCK_MIN_DELAY: %w", err)
		}
		cfg.Mock.MinDelay = d
	}
	if v := strings.TrimSpace(os.Getenv("TRACETUTOR_MOCK_MAX_DELAY")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TRACETUTOR_MOCK_MAX_DELAY: %w", err)
		}
		cfg.Mock.MaxDelay = d
	}
	return nil
}

// Validate rejects settings the program cannot start with.
func (c *Config) Validate() error {
	if c.Mock.MinDelay < 0 || c.Mock.MaxDelay < 0 {
		return fmt.Errorf("mock delays must not be negative")
	}
	if c.Mock.MaxDelay < c.Mock.MinDelay {
		return fmt.Errorf("mock max_delay %s is shorter than min_delay %s", c.Mock.MaxDelay, c.Mock.MinDelay)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
