package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger configures charmbracelet/log for the console. debug overrides
// the configured level.
func newLogger(w io.Writer, level string, debug bool) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	if debug {
		lvl = log.DebugLevel
	}
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "schocken",
	}), nil
}
