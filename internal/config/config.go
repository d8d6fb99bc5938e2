// Package config loads agentdesk settings from ~/.agentdesk/config.yaml,
// an optional project-local .agentdesk/config.yaml overlay and environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/agentdesk/internal/catalog"
)

// Config file format versions this build understands.
const (
	CurrentVersion    = "1.0.0"
	SupportedVersions = ">= 1.0.0, < 2.0.0"
)

// Environment overrides.
const (
	EnvHome       = "AGENTDESK_HOME"
	EnvLogLevel   = "AGENTDESK_LOG_LEVEL"
	EnvDirectory  = "AGENTDESK_DIRECTORY"
	EnvProjectDir = "AGENTDESK_PROJECT_DIR"
)

const (
	outputTypeFile  = "file"
	configFileName  = "config.yaml"
	defaultPageSize = 25
	defaultDebounce = 500
)

// ErrUnsupportedVersion is returned when the config file version falls
// outside SupportedVersions.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config is the full agentdesk configuration.
type Config struct {
	Version   string          `yaml:"version"`
	Logging   LoggingConfig   `yaml:"logging"`
	Picker    PickerConfig    `yaml:"picker"`
	Directory DirectoryConfig `yaml:"directory"`
	Cache     CacheConfig     `yaml:"cache"`

	path string
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// PickerConfig tunes the consult/transfer picker.
type PickerConfig struct {
	PageSize        int    `yaml:"page_size"`
	DebounceMS      int    `yaml:"debounce_ms"`
	InitialCategory string `yaml:"initial_category"`
}

// DirectoryConfig points at the directory file the picker reads.
type DirectoryConfig struct {
	File      string `yaml:"file"`
	LatencyMS int    `yaml:"latency_ms"`
}

// CacheConfig controls the fetched-page cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
}

// Default returns the built-in configuration rooted at the config directory.
func Default() *Config {
	dir, err := GetConfigDir()
	if err != nil {
		dir = filepath.Join(os.TempDir(), "agentdesk")
	}
	return &Config{
		Version: CurrentVersion,
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dir, "logs", "agentdesk.log"),
		},
		Picker: PickerConfig{
			PageSize:        defaultPageSize,
			DebounceMS:      defaultDebounce,
			InitialCategory: catalog.CategoryAgents.String(),
		},
		Directory: DirectoryConfig{
			File: filepath.Join(dir, "directory.yaml"),
		},
		Cache: CacheConfig{
			Enabled:    true,
			Dir:        filepath.Join(dir, "cache"),
			TTLSeconds: 600,
			MaxSizeMB:  20,
		},
		path: filepath.Join(dir, configFileName),
	}
}

// New returns the default configuration with the user config file merged
// on top (when present) and environment overrides applied. Load errors
// leave the defaults in place.
func New() *Config {
	cfg := Default()
	if _, err := os.Stat(cfg.path); err == nil {
		_ = cfg.Load(cfg.path)
	}
	cfg.ApplyEnv()
	return cfg
}

// Load merges the YAML file at path into c and validates the result.
// On error c is left unchanged.
func (c *Config) Load(path string) error {
	next := *c
	if err := ShallowMergeYAML(&next, path); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.path = path
	*c = next
	return nil
}

// Path returns the file the config was last loaded from.
func (c *Config) Path() string {
	return c.path
}

// SetPath sets the file Save writes to.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Save writes c to its path, creating the directory.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(c.path, data, 0600)
}

// ApplyEnv applies AGENTDESK_LOG_LEVEL and AGENTDESK_DIRECTORY.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvDirectory); v != "" {
		c.Directory.File = v
	}
}

// Validate checks the file version and picker settings.
func (c *Config) Validate() error {
	if c.Version != "" {
		v, err := semver.NewVersion(c.Version)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, c.Version, err)
		}
		constraint, err := semver.NewConstraint(SupportedVersions)
		if err != nil {
			return fmt.Errorf("parsing version constraint: %w", err)
		}
		if !constraint.Check(v) {
			return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
		}
	}
	if c.Picker.PageSize < 0 {
		return fmt.Errorf("picker.page_size must not be negative, got %d", c.Picker.PageSize)
	}
	if c.Picker.DebounceMS < 0 {
		return fmt.Errorf("picker.debounce_ms must not be negative, got %d", c.Picker.DebounceMS)
	}
	if c.Picker.InitialCategory != "" {
		if _, err := catalog.ParseCategory(c.Picker.InitialCategory); err != nil {
			return fmt.Errorf("picker.initial_category: %w", err)
		}
	}
	return nil
}

// DebounceDelay returns the configured debounce window.
func (p PickerConfig) DebounceDelay() time.Duration {
	return time.Duration(p.DebounceMS) * time.Millisecond
}

// Category returns the configured initial category, Agents when unset
// or invalid.
func (p PickerConfig) Category() catalog.Category {
	c, err := catalog.ParseCategory(p.InitialCategory)
	if err != nil {
		return catalog.CategoryAgents
	}
	return c
}

// Latency returns the simulated directory latency.
func (d DirectoryConfig) Latency() time.Duration {
	return time.Duration(d.LatencyMS) * time.Millisecond
}

// TTL returns the cache TTL.
func (cc CacheConfig) TTL() time.Duration {
	return time.Duration(cc.TTLSeconds) * time.Second
}

// String renders the cache settings for diagnostics.
func (cc CacheConfig) String() string {
	if !cc.Enabled {
		return "disabled"
	}
	return cc.Dir + " (ttl " + strconv.Itoa(cc.TTLSeconds) + "s)"
}
