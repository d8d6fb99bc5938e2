package cache

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Cache defaults and bounds.
const (
	DefaultTTL       = 10 * time.Minute
	MinTTL           = 5 * time.Second
	MaxTTL           = 24 * time.Hour
	DefaultMaxSizeMB = 20

	EnvEnabled    = "AGENTDESK_CACHE_ENABLED"
	EnvDir        = "AGENTDESK_CACHE_DIR"
	EnvTTLSeconds = "AGENTDESK_CACHE_TTL_SECONDS"
	EnvMaxSizeMB  = "AGENTDESK_CACHE_MAX_SIZE_MB"
)

// ErrInvalidTTL is returned when a TTL falls outside [MinTTL, MaxTTL].
var ErrInvalidTTL = fmt.Errorf("TTL must be between %s and %s", MinTTL, MaxTTL)

// Settings configures a Store.
type Settings struct {
	Enabled   bool
	Dir       string
	TTL       time.Duration
	MaxSizeMB int
}

// DefaultSettings returns an enabled cache rooted at dir.
func DefaultSettings(dir string) Settings {
	return Settings{
		Enabled:   true,
		Dir:       dir,
		TTL:       DefaultTTL,
		MaxSizeMB: DefaultMaxSizeMB,
	}
}

// ApplyEnv overrides s from the AGENTDESK_CACHE_* environment variables.
// Unparseable or out-of-range values are ignored.
func (s Settings) ApplyEnv() Settings {
	if v := os.Getenv(EnvEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			s.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvDir); v != "" {
		s.Dir = v
	}
	if v := os.Getenv(EnvTTLSeconds); v != "" {
		if ttl, err := ParseTTL(v); err == nil {
			s.TTL = ttl
		}
	}
	if v := os.Getenv(EnvMaxSizeMB); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size >= 0 {
			s.MaxSizeMB = size
		}
	}
	return s
}

// ParseTTL accepts integer seconds ("600") or a duration ("10m").
func ParseTTL(s string) (time.Duration, error) {
	var ttl time.Duration
	if seconds, err := strconv.Atoi(s); err == nil {
		ttl = time.Duration(seconds) * time.Second
	} else {
		d, parseErr := time.ParseDuration(s)
		if parseErr != nil {
			return 0, fmt.Errorf("invalid TTL format: %w", parseErr)
		}
		ttl = d
	}
	if ttl < MinTTL || ttl > MaxTTL {
		return 0, fmt.Errorf("%w: got %s", ErrInvalidTTL, ttl)
	}
	return ttl, nil
}
