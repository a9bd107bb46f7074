package registry

import (
	"os"

	"github.com/charmbracelet/log"
	ini "gopkg.in/ini.v1"

	"flcore/fllog"
)

// Options holds everything an Option can adjust about a Registry
// before it exists. Its zero value is a Registry with default
// logging and no sidecar overrides.
type Options struct {
	logger        fllog.Logger
	archetypeData []byte
}

// Option configures a Registry at construction time.
type Option func(*Options)

// WithLogger overrides the logger a Registry reports diagnostics to.
// Passing fllog.Discard() silences a Registry entirely.
func WithLogger(l fllog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithSidecarConfig loads a small flcore.ini file - distinct from the
// game's own ini dialect handled by the config package - for
// settings this module itself exposes, currently just the log level.
// A missing or malformed sidecar file is not an error: its absence
// just means the defaults apply.
func WithSidecarConfig(path string) Option {
	return func(o *Options) {
		cfg, err := ini.Load(path)
		if err != nil {
			return
		}
		levelName := cfg.Section("log").Key("level").MustString("warn")
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Prefix:          "flcore",
			ReportTimestamp: false,
		})
		logger.SetLevel(fllog.ParseLevel(levelName))
		o.logger = logger
	}
}
