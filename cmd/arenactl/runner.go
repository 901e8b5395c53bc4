package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/arenakit/arena/alloc"
	"github.com/joshuapare/arenakit/arena/dirty"
	"github.com/joshuapare/arenakit/arena/printer"
	"github.com/joshuapare/arenakit/arena/verify"
)

// errScript marks failures of the script itself, as opposed to allocator
// refusals, which are reported and skipped.
var errScript = errors.New("script error")

// opResult records what one operation did.
type opResult struct {
	Line   int    `json:"line"`
	Op     string `json:"op"`
	Ptr    uint32 `json:"ptr,omitempty"`
	Size   int    `json:"size,omitempty"`
	Data   string `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
	Layout string `json:"-"`

	// Touched lists the Header ranges the operation wrote (trace mode only).
	Touched      []dirty.Range `json:"touched,omitempty"`
	Writes       int           `json:"writes,omitempty"`        // Header writes reported
	TouchedBytes int           `json:"touched_bytes,omitempty"` // distinct bytes written

}

// runner executes parsed operations against one allocator, binding names to
// live pointers.
type runner struct {
	al    *alloc.Allocator
	names map[string]alloc.Ptr
	check bool
	popts printer.Options
	dt    *dirty.Tracker // nil unless tracing
}

func newRunner(al *alloc.Allocator, check bool, popts printer.Options) *runner {
	return &runner{
		al:    al,
		names: make(map[string]alloc.Ptr),
		check: check,
		popts: popts,
	}
}

// trace makes the runner record which Headers every operation writes. dt
// must be the tracker the allocator was created with.
func (r *runner) trace(dt *dirty.Tracker) { r.dt = dt }

// run executes ops in order. Allocator errors are recorded in the result and
// execution continues; unknown names, oversize writes, and failed checks stop
// the run.
func (r *runner) run(ops []op) ([]opResult, error) {
	results := make([]opResult, 0, len(ops))
	for _, o := range ops {
		res, err := r.exec(o)
		res.Line, res.Op = o.Line, o.String()
		if r.dt != nil {
			res.Touched = r.dt.Ranges()
			res.Writes = r.dt.Len()
			res.TouchedBytes = r.dt.Bytes()
			r.dt.Reset()
		}
		results = append(results, res)
		if err != nil {
			return results, fmt.Errorf("line %d: %s: %w", o.Line, o, err)
		}
		if r.check {
			if err := verify.All(r.al.Arena().Bytes()); err != nil {
				return results, fmt.Errorf("line %d: %s: arena check failed: %w", o.Line, o, err)
			}
		}
	}
	return results, nil
}

func (r *runner) exec(o op) (opResult, error) {
	var res opResult
	switch o.Kind {
	case opAlloc:
		if _, ok := r.names[o.Name]; ok {
			return res, fmt.Errorf("%w: %q is already bound", errScript, o.Name)
		}
		p, err := r.al.Allocate(o.Size)
		if err != nil {
			res.Error = err.Error()
			return res, nil
		}
		r.names[o.Name] = p
		return r.describe(res, p), nil

	case opFree:
		p, err := r.lookup(o.Name)
		if err != nil {
			return res, err
		}
		delete(r.names, o.Name)
		if err := r.al.Deallocate(p); err != nil {
			res.Error = err.Error()
		}
		return res, nil

	case opRealloc:
		p, err := r.lookup(o.Name)
		if err != nil {
			return res, err
		}
		np, err := r.al.Reallocate(p, o.Size)
		if err != nil {
			// The old section is gone either way.
			delete(r.names, o.Name)
			res.Error = err.Error()
			return res, nil
		}
		r.names[o.Name] = np
		return r.describe(res, np), nil

	case opWrite:
		b, err := r.payload(o.Name)
		if err != nil {
			return res, err
		}
		if len(o.Text) > len(b) {
			return res, fmt.Errorf("%w: %d bytes do not fit in %d", errScript, len(o.Text), len(b))
		}
		n := copy(b, o.Text)
		clear(b[n:])
		res.Size = n
		return res, nil

	case opRead:
		b, err := r.payload(o.Name)
		if err != nil {
			return res, err
		}
		res.Data = string(bytes.TrimRight(b, "\x00"))
		res.Size = len(b)
		return res, nil

	case opLayout:
		var buf bytes.Buffer
		opts := r.popts
		opts.Format = printer.FormatText
		opts.ShowUsage = false
		opts.ShowStats = false
		opts.ShowSections = true
		if err := printer.New(r.al, &buf, opts).Print(); err != nil {
			return res, err
		}
		res.Layout = buf.String()
		return res, nil
	}
	return res, fmt.Errorf("%w: unhandled operation %q", errScript, o.Kind)
}

func (r *runner) lookup(name string) (alloc.Ptr, error) {
	p, ok := r.names[name]
	if !ok {
		return alloc.NullPtr, fmt.Errorf("%w: %q is not bound", errScript, name)
	}
	return p, nil
}

func (r *runner) payload(name string) ([]byte, error) {
	p, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return r.al.Bytes(p)
}

func (r *runner) describe(res opResult, p alloc.Ptr) opResult {
	res.Ptr = uint32(p)
	if n, err := r.al.Size(p); err == nil {
		res.Size = n
	}
	return res
}

// writeResult prints one result line in text form, followed by the touched
// Header ranges when tracing.
func writeResult(w io.Writer, res opResult) {
	defer writeTouched(w, res)
	switch {
	case res.Error != "":
		fmt.Fprintf(w, "%4d  %-24s  error: %s\n", res.Line, res.Op, res.Error)
	case res.Layout != "":
		fmt.Fprintf(w, "%4d  %s\n%s", res.Line, res.Op, res.Layout)
	case res.Ptr != 0:
		fmt.Fprintf(w, "%4d  %-24s  -> 0x%08X (%d bytes)\n", res.Line, res.Op, res.Ptr, res.Size)
	case res.Data != "" || res.Size != 0:
		if res.Data != "" {
			fmt.Fprintf(w, "%4d  %-24s  %q\n", res.Line, res.Op, res.Data)
		} else {
			fmt.Fprintf(w, "%4d  %-24s  %d bytes\n", res.Line, res.Op, res.Size)
		}
	default:
		fmt.Fprintf(w, "%4d  %s\n", res.Line, res.Op)
	}
}

func writeTouched(w io.Writer, res opResult) {
	if len(res.Touched) == 0 {
		return
	}
	fmt.Fprint(w, "      touched")
	for _, rg := range res.Touched {
		fmt.Fprintf(w, " 0x%X+%d", rg.Off, rg.Len)
	}
	fmt.Fprintf(w, " (%d writes, %d bytes)\n", res.Writes, res.TouchedBytes)
}
