// Package logging builds the logrus logger shared by the CLI layers.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/transpyle/internal/config"
)

// New creates a logger from cfg. Invalid levels fall back to warn and an
// unopenable log file falls back to stderr, both with a warning on the
// resulting logger.
func New(cfg config.LogConfig, stderr io.Writer) *logrus.Logger {
	if stderr == nil {
		stderr = os.Stderr
	}

	logger := logrus.New()

	var warnings []string

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		warnings = append(warnings, "invalid log level '"+cfg.Level+"', using 'warn' instead")
		level = logrus.WarnLevel
	}

	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	var output io.Writer

	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		output = stderr
	case "stdout":
		output = os.Stdout
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			warnings = append(warnings, "failed to open log file '"+cfg.Output+"', using stderr instead: "+err.Error())
			output = stderr
		} else {
			output = file
		}
	}

	logger.SetOutput(output)

	for _, warning := range warnings {
		logger.Warn(warning)
	}

	return logger
}
