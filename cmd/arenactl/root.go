package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/internal/logger"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	noColor  bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "arenactl",
	Short: "Exercise and inspect a fixed-arena best-fit allocator",
	Long: `arenactl runs allocation workloads against a fixed-size arena and
prints the resulting chain of sections, byte accounting, and operation
counters. Scripts are plain text, one operation per line.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd.ErrOrStderr())
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initLogging installs the global logger from the log flags. Rejected
// pointers are logged at warn, so they show up by default.
func initLogging(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	if verbose {
		level = min(level, slog.LevelInfo)
	}
	logger.Init(logger.Options{
		Enabled: !quiet,
		Writer:  w,
		Level:   level,
		JSON:    jsonOut,
		NoColor: noColor,
	})
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(w io.Writer, format string, args ...any) {
	if !quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(w io.Writer, format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseSize accepts plain byte counts and binary suffixes (4k, 64KiB, 1MiB).
func parseSize(s string) (int, error) {
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n < 0 || int64(int(n)) != n {
		return 0, fmt.Errorf("invalid size %q: out of range", s)
	}
	return int(n), nil
}

// newArena creates a formatted arena of the given size, heap or mmap backed.
func newArena(size string, mapped bool) (*arena.Arena, error) {
	n, err := parseSize(size)
	if err != nil {
		return nil, err
	}
	if mapped {
		return arena.Map(n)
	}
	return arena.New(n)
}
