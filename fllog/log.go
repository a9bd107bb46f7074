// Package fllog is the module's structured logging surface: a thin
// wrapper around charmbracelet/log giving every diagnostic in the
// error-handling design (dangling references, nickname collisions,
// skipped lines, skipped files) a consistent, filterable home instead
// of scattering fmt.Println calls through the decoders.
package fllog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the interface the rest of the module depends on, so
// tests can swap in a discarding logger without pulling in charmbracelet/log.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

var std Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "flcore",
	ReportTimestamp: false,
})

// Default returns the module-wide logger. Registries may be given
// their own via WithLogger; anything constructed without one falls
// back to this.
func Default() Logger { return std }

// SetLevel adjusts the verbosity of the default logger. It has no
// effect on loggers passed explicitly to a Registry.
func SetLevel(level log.Level) {
	if l, ok := std.(*log.Logger); ok {
		l.SetLevel(level)
	}
}

// Discard returns a Logger that drops everything, for tests and for
// callers who want the in-band error returns without any log noise.
func Discard() Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// ParseLevel maps the registry options file's textual level names
// ("debug", "warn", "error", ...) onto charmbracelet/log's Level type,
// defaulting to Warn for anything unrecognised.
func ParseLevel(name string) log.Level {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
