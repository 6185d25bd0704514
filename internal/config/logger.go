package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a structured logger writing to w.
// An unknown level name falls back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "pong",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
