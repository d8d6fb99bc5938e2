package catalog

import (
	"sync"

	"github.com/rs/zerolog"
)

//nolint:gochecknoglobals // Package logger for pure helpers, replaced by SetLogger at startup.
var (
	pkgLogger   = zerolog.Nop()
	pkgLoggerMu sync.RWMutex
)

// SetLogger sets the logger used by the helpers in this package.
func SetLogger(l zerolog.Logger) {
	pkgLoggerMu.Lock()
	defer pkgLoggerMu.Unlock()
	pkgLogger = l.With().Str("component", "catalog").Logger()
}

func helperLogger() zerolog.Logger {
	pkgLoggerMu.RLock()
	defer pkgLoggerMu.RUnlock()
	return pkgLogger
}

// guard runs fn and returns fallback if fn panics. The panic is logged with op.
func guard[R any](op string, fallback R, fn func() R) (out R) {
	defer func() {
		if r := recover(); r != nil {
			l := helperLogger()
			l.Error().Str("operation", op).Interface("panic", r).Msg("helper failed, using fallback")
			out = fallback
		}
	}()
	return fn()
}
