package logging

import (
	"io"
	"os"
	"time"

	"github.com/agentx-labs/stylescan/internal/manifest"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Options contains options for creating a logger.
type Options struct {
	Level   string // "debug", "info", "warn", "error"
	Format  string // "pretty" or "json"
	Output  io.Writer
	NoColor bool
}

// New creates a logger with the given options. Unknown levels fall back to
// info, unknown formats to pretty. Output defaults to stderr.
func New(opts Options) zerolog.Logger {
	var output io.Writer = os.Stderr
	if opts.Output != nil {
		output = opts.Output
	}

	if opts.Format != FormatJSON {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
			NoColor:    opts.NoColor,
		}
	}

	return zerolog.New(output).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel parses a log level string, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return parsed
}

// Warnings emits each manifest warning as a warn event.
func Warnings(log zerolog.Logger, source string, warnings []manifest.Warning) {
	for _, w := range warnings {
		ev := log.Warn().Str("code", w.Code)
		if w.Key != "" {
			ev = ev.Str("key", w.Key)
		}
		if source != "" {
			ev = ev.Str("file", source)
		}
		ev.Msg(w.Message)
	}
}
