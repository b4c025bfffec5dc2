package shared

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a charm logger on stderr at the named level,
// using the JSON formatter when json is set.
func SetupLogger(level string, json bool) (*log.Logger, error) {
	return NewLogger(os.Stderr, level, json)
}

// NewLogger is SetupLogger for an arbitrary writer
func NewLogger(w io.Writer, level string, json bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}
	if json {
		opts.Formatter = log.JSONFormatter
		opts.TimeFormat = time.RFC3339Nano
	}
	return log.NewWithOptions(w, opts), nil
}
