package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/syspower/internal/logger"
)

// Config holds the optional settings honored by the syspower CLI.
type Config struct {
	// LogLevel is the minimum level for log output (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// NoSession disables desktop session-manager integration. Useful on
	// headless machines that still have stray session binaries on PATH.
	NoSession bool `yaml:"no_session"`
}

const (
	// DefaultConfigName is the settings path relative to the user config dir.
	DefaultConfigName = "syspower/config.yaml"

	// DefaultLogLevel is used when the settings file sets no level.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the file permission for saved settings.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errBadLogLevel is returned when the configured log level is unknown.
	errBadLogLevel = errors.New("unknown log level")
)

// Default returns a fresh configuration with default values.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
	}
}

// DefaultPath resolves the settings location under the XDG config directory.
// When the directory cannot be determined the bare filename is used, which
// resolves relative to the working directory.
func DefaultPath() string {
	path, err := xdg.ConfigFile(DefaultConfigName)
	if err != nil {
		return filepath.Base(DefaultConfigName)
	}

	return path
}

// Load reads configuration from the provided path and validates it.
// An empty path means the default location; a missing file means defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultPath()
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errBadLogLevel, cfg.LogLevel)
	}

	return nil
}
