package config

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/agentdesk/internal/logging"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	Level(zerolog.InfoLevel).With().Timestamp().Logger()

// logResult tracks the file handle behind Logger so it can be closed.
//
//nolint:gochecknoglobals // Tracks the global logger's file handle for proper cleanup
var logResult *logging.LogPathResult

// logMu protects Logger and logResult.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger rebuilds the global Logger from lc. It returns the resolved
// destination so the caller can tell the user where logs go. Any previously
// opened log file is closed first.
func InitLogger(lc LoggingConfig) logging.LogPathResult {
	logMu.Lock()
	defer logMu.Unlock()

	closeLogFileLocked()

	result := logging.NewLoggerWithPath(lc.ToLoggingConfig())
	logResult = &result
	Logger = result.Logger
	return result
}

// SetLogLevel sets the global Logger's level. Unparseable levels select info.
func SetLogLevel(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	Logger = Logger.Level(lvl)
}

// CloseLogFile closes the current log file, if any, and points Logger back
// at stderr.
func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
}

func closeLogFileLocked() {
	if logResult == nil || !logResult.UsingFile {
		logResult = nil
		return
	}
	_ = logResult.Close()
	logResult = nil
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(Logger.GetLevel()).
		With().
		Timestamp().
		Logger()
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

// ToLoggingConfig converts the config section to a logging.Config.
// A configured file selects file output; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global Logging section.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
