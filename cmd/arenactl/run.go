package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena/alloc"
	"github.com/joshuapare/arenakit/arena/dirty"
	"github.com/joshuapare/arenakit/arena/printer"
	"github.com/joshuapare/arenakit/internal/logger"
)

var (
	runSize  string
	runMmap  bool
	runTrace bool
	runCheck bool
	runHuman bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().StringVar(&runSize, "size", "64KiB", "Arena size (bytes, or with k/KiB/M/MiB suffix)")
	cmd.Flags().BoolVar(&runMmap, "mmap", false, "Back the arena with an anonymous memory mapping")
	cmd.Flags().BoolVar(&runTrace, "trace", false, "Log every allocator operation at debug level")
	cmd.Flags().BoolVar(&runCheck, "check", false, "Verify the arena after every operation")
	cmd.Flags().BoolVarP(&runHuman, "human", "H", false, "Print sizes in KiB/MiB")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script|->",
		Short: "Run an allocation script against a fresh arena",
		Long: `The run command executes a workload script against a freshly formatted
arena, then prints the final layout and usage.

Script lines (# starts a comment):
  alloc <name> <size>     allocate and bind name
  free <name>             release name
  realloc <name> <size>   resize name; on failure name is released
  write <name> <text>     copy text into the payload
  read <name>             print the payload
  layout                  print the current chain

Example:
  arenactl run workload.txt --size 4KiB --check
  echo "alloc a 100" | arenactl run - --trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
	return cmd
}

func runScript(stdin io.Reader, w, errW io.Writer, path string) error {
	src := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		src = f
	}
	ops, err := parseScript(src)
	if err != nil {
		return err
	}

	a, err := newArena(runSize, runMmap)
	if err != nil {
		return err
	}
	defer a.Close()
	printVerbose(w, "Arena: %d bytes, %d operations\n", a.Len(), len(ops))

	opts := &alloc.Options{}
	var dt *dirty.Tracker
	if runTrace {
		dt = dirty.NewTracker(1)
		opts.Tracker = dt
		opts.Logger = logger.New(logger.Options{
			Enabled: true,
			Writer:  errW,
			Level:   slog.LevelDebug,
			JSON:    jsonOut,
			NoColor: noColor,
		})
	} else {
		opts.Logger = logger.L
	}
	al, err := alloc.New(a, opts)
	if err != nil {
		return err
	}

	popts := printer.DefaultOptions()
	popts.HumanSizes = runHuman
	popts.ShowStats = verbose
	r := newRunner(al, runCheck, popts)
	if dt != nil {
		r.trace(dt)
	}
	results, runErr := r.run(ops)

	if jsonOut {
		if err := writeJSONReport(w, al, popts, results); err != nil {
			return err
		}
		return runErr
	}

	if !quiet {
		for _, res := range results {
			writeResult(w, res)
		}
		fmt.Fprintln(w)
	}
	if runErr != nil {
		return runErr
	}
	if quiet {
		return nil
	}
	return printer.New(al, w, popts).Print()
}

// writeJSONReport emits one document holding every operation result and
// the final arena report.
func writeJSONReport(w io.Writer, al *alloc.Allocator, popts printer.Options, results []opResult) error {
	var report bytes.Buffer
	popts.Format = printer.FormatJSON
	if err := printer.New(al, &report, popts).Print(); err != nil {
		return err
	}
	return printJSON(w, struct {
		Ops    []opResult      `json:"ops"`
		Report json.RawMessage `json:"report"`
	}{results, report.Bytes()})
}
