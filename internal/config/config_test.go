package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks log level validation and defaulting.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	cfg := new(Config)

	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)

	cfg.LogLevel = "chatty"
	require.Error(t, Validate(cfg))

	cfg.LogLevel = "debug"
	require.NoError(t, Validate(cfg))
}

// TestLoadMissingFile ensures a missing settings file yields defaults
// instead of an error, since all settings are optional.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		LogLevel:  "warn",
		NoSession: true,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

// TestSaveNil rejects a nil configuration.
func TestSaveNil(t *testing.T) {
	t.Parallel()

	require.Error(t, Save(filepath.Join(t.TempDir(), "config.yaml"), nil))
}
