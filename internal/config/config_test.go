package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/agentdesk/internal/catalog"
)

// stubHome points the config directory at a temp dir.
func stubHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDirectory, "")
	t.Setenv(EnvProjectDir, "")
	return home
}

func TestDefault(t *testing.T) {
	home := stubHome(t)

	cfg := Default()
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, "logs", "agentdesk.log"), cfg.Logging.File)
	assert.Equal(t, 25, cfg.Picker.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.Picker.DebounceDelay())
	assert.Equal(t, catalog.CategoryAgents, cfg.Picker.Category())
	assert.Equal(t, filepath.Join(home, "directory.yaml"), cfg.Directory.File)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL())
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.Path())
	require.NoError(t, cfg.Validate())
}

func TestNew(t *testing.T) {
	t.Run("reads user config", func(t *testing.T) {
		home := stubHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
version: 1.1.0
picker:
  page_size: 50
  initial_category: queues
`), 0600))

		cfg := New()
		assert.Equal(t, 50, cfg.Picker.PageSize)
		assert.Equal(t, catalog.CategoryQueues, cfg.Picker.Category())
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("env overrides", func(t *testing.T) {
		stubHome(t)
		t.Setenv(EnvLogLevel, "trace")
		t.Setenv(EnvDirectory, "/srv/directory.yaml")

		cfg := New()
		assert.Equal(t, "trace", cfg.Logging.Level)
		assert.Equal(t, "/srv/directory.yaml", cfg.Directory.File)
	})

	t.Run("invalid user config keeps defaults", func(t *testing.T) {
		home := stubHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
version: 2.0.0
picker:
  page_size: 50
`), 0600))

		cfg := New()
		assert.Equal(t, CurrentVersion, cfg.Version)
		assert.Equal(t, 25, cfg.Picker.PageSize)
	})
}

func TestValidate(t *testing.T) {
	stubHome(t)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty version", mutate: func(c *Config) { c.Version = "" }},
		{name: "minor bump", mutate: func(c *Config) { c.Version = "1.9.3" }},
		{name: "next major", mutate: func(c *Config) { c.Version = "2.0.0" }, wantErr: ErrUnsupportedVersion},
		{name: "garbage version", mutate: func(c *Config) { c.Version = "one" }, wantErr: ErrUnsupportedVersion},
		{name: "negative page size", mutate: func(c *Config) { c.Picker.PageSize = -1 }},
		{name: "bad category", mutate: func(c *Config) { c.Picker.InitialCategory = "fax" }, wantErr: catalog.ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.name == "negative page size":
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadAndSave(t *testing.T) {
	stubHome(t)

	cfg := Default()
	cfg.Picker.PageSize = 40
	cfg.path = filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.Save())

	loaded := Default()
	require.NoError(t, loaded.Load(cfg.Path()))
	assert.Equal(t, 40, loaded.Picker.PageSize)
	assert.Equal(t, cfg.Path(), loaded.Path())

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: 3.0.0\n"), 0600))
	require.ErrorIs(t, Default().Load(bad), ErrUnsupportedVersion)

	require.Error(t, (&Config{}).Save())
}

func TestLoad_InvalidFileLeavesConfigUnchanged(t *testing.T) {
	stubHome(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: 2.0.0
picker:
  page_size: 50
`), 0600))

	cfg := Default()
	defaultPath := cfg.Path()
	require.ErrorIs(t, cfg.Load(path), ErrUnsupportedVersion)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 25, cfg.Picker.PageSize)
	assert.Equal(t, defaultPath, cfg.Path())
	require.NoError(t, cfg.Validate())
}

func TestLoggingConversion(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", out.Output)

	lc.File = "/tmp/agentdesk.log"
	out = lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/agentdesk.log", out.File)
}

func TestInitLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "agentdesk.log")
	t.Cleanup(CloseLogFile)

	result := InitLogger(LoggingConfig{Level: "debug", File: path})
	require.True(t, result.UsingFile)
	assert.Equal(t, "debug", GetLogger().GetLevel().String())

	SetLogLevel("warn")
	assert.Equal(t, "warn", GetLogger().GetLevel().String())
	SetLogLevel("nope")
	assert.Equal(t, "info", GetLogger().GetLevel().String())

	CloseLogFile()
	assert.Equal(t, "info", GetLogger().GetLevel().String())
}
