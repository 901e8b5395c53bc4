package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena/alloc"
	"github.com/joshuapare/arenakit/arena/printer"
)

var layoutSize string

func init() {
	cmd := newLayoutCmd()
	cmd.Flags().StringVar(&layoutSize, "size", "64KiB", "Arena size (bytes, or with k/KiB/M/MiB suffix)")
	rootCmd.AddCommand(cmd)
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the layout of a freshly formatted arena",
		Long: `The layout command formats an arena of the requested size and prints
its single free section and byte accounting.

Example:
  arenactl layout --size 1MiB
  arenactl layout --size 4096 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newArena(layoutSize, false)
			if err != nil {
				return err
			}
			al, err := alloc.New(a, nil)
			if err != nil {
				return err
			}
			opts := printer.DefaultOptions()
			if jsonOut {
				opts.Format = printer.FormatJSON
			}
			printInfo(cmd.ErrOrStderr(), "Formatted %d-byte arena\n", a.Len())
			return printer.New(al, cmd.OutOrStdout(), opts).Print()
		},
	}
}
