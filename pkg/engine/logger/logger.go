// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures the global logger from the environment:
//
//	LOG_LEVEL   logrus level name, default "warn"
//	LOG_FORMAT  "json" or "text", default text
//	LOG_FILE    path to append to, default stderr
//
// The returned closer releases LOG_FILE and is always safe to call.
func Init() (io.Closer, error) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "warn"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	path := os.Getenv("LOG_FILE")
	if path == "" {
		// The game frame owns stdout.
		Log.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Log.SetOutput(os.Stderr)
		return io.NopCloser(nil), fmt.Errorf("open log file %s: %w", path, err)
	}
	Log.SetOutput(f)
	return f, nil
}

// Component returns an entry tagged with the subsystem name
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
