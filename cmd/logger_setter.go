package cmd

import "github.com/InternatManhole/plugin-log/internal/logging"

// SetLogger sets the package logger. This is primarily a test helper.
func SetLogger(l *logging.LeveledLogger) {
	logger = l
}
