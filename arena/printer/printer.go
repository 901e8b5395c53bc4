// Package printer renders allocator state for humans and tools.
package printer

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/arenakit/arena/alloc"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an aligned human-readable table.
	FormatText Format = "text"

	// FormatJSON outputs a single JSON document.
	FormatJSON Format = "json"
)

// Source is the allocator state a Printer reads. *alloc.Allocator satisfies it.
type Source interface {
	Sections() []alloc.Section
	Usage() alloc.Usage
	Stats() alloc.Stats
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowSections prints one row per chained section.
	// Default: true
	ShowSections bool

	// ShowUsage prints the byte accounting summary.
	// Default: true
	ShowUsage bool

	// ShowStats prints the running operation counters.
	// Default: false
	ShowStats bool

	// HumanSizes renders byte counts as KiB/MiB in the text summary.
	// Default: false
	HumanSizes bool

	// Language selects digit grouping for byte counts (text format only).
	// Default: language.English
	Language language.Tag
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:       FormatText,
		ShowSections: true,
		ShowUsage:    true,
		Language:     language.English,
	}
}

// Printer writes allocator state to an io.Writer.
type Printer struct {
	opts   Options
	writer io.Writer
	src    Source
	num    *message.Printer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(al, os.Stdout, printer.DefaultOptions())
//	p.Print()
func New(src Source, w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Language == language.Und {
		opts.Language = language.English
	}
	return &Printer{
		opts:   opts,
		writer: w,
		src:    src,
		num:    message.NewPrinter(opts.Language),
	}
}

// Print writes everything the options ask for.
func (p *Printer) Print() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON()
	case FormatText:
		return p.printText()
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("printer: unknown format %q (want text or json)", s)
}
