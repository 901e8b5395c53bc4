// Package logger holds the process-wide structured logger shared by the
// arena packages.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L = slog.New(slog.DiscardHandler)

// EnvAllocLog turns on debug allocator logging to stderr when set to any
// non-empty value.
const EnvAllocLog = "ARENAKIT_LOG_ALLOC"

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Writer  io.Writer  // Destination. Default: os.Stderr
	Level   slog.Level // Minimum log level
	JSON    bool       // Emit JSON records instead of tint's human format
	NoColor bool
}

// Init configures logging. Call from main() before any log calls.
func Init(opts Options) {
	L = New(opts)
}

// New builds a logger from opts without touching the global.
func New(opts Options) *slog.Logger {
	if !opts.Enabled {
		return slog.New(slog.DiscardHandler)
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: "15:04:05.000",
		NoColor:    opts.NoColor,
	}))
}

// FromEnv returns a debug logger writing to stderr when EnvAllocLog is set,
// and L otherwise.
func FromEnv() *slog.Logger {
	if os.Getenv(EnvAllocLog) == "" {
		return L
	}
	return New(Options{Enabled: true, Level: slog.LevelDebug})
}
