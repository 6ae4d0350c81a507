// Package logging builds the launcher's hclog loggers.
package logging

import (
	"io"
	"os"
	"runtime"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	// Determine if JSON format should be used
	jsonFormat := os.Getenv("SIDEKICK_JSON_LOG") == "1"

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix(output), output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("SIDEKICK_LOG_LEVEL")
	if level == "" {
		level = "warn" // Default to warn for production safety
	}
	return level
}

// linePrefix picks the per-line marker: emoji on Unix terminals, ASCII
// everywhere else (Windows consoles, pipes, log files).
func linePrefix(output io.Writer) string {
	if runtime.GOOS == "windows" {
		return "[SK] "
	}
	if f, ok := output.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return "🚀 "
	}
	return "[SK] "
}
