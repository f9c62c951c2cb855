// Package logging provides the warn/debug sink used across pastex.
// The level comes from the PASTEX_LOG environment variable
// (debug|info|warn|error), defaulting to warn.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable controlling the log level.
const EnvVar = "PASTEX_LOG"

var logger = newLogger()

func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})

	if value := os.Getenv(EnvVar); value != "" {
		if level, err := log.ParseLevel(value); err == nil {
			l.SetLevel(level)
		}
	}

	return l
}

// SetDefaultLevel applies a level name from configuration. PASTEX_LOG
// wins when both are set.
func SetDefaultLevel(name string) {
	if os.Getenv(EnvVar) != "" {
		return
	}

	if level, err := log.ParseLevel(name); err == nil {
		logger.SetLevel(level)
	}
}

// SetVerbose lowers the level to debug, regardless of PASTEX_LOG.
func SetVerbose() {
	logger.SetLevel(log.DebugLevel)
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Infof logs a formatted message at info level.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
