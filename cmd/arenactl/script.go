package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// opKind names a script operation.
type opKind string

const (
	opAlloc   opKind = "alloc"
	opFree    opKind = "free"
	opRealloc opKind = "realloc"
	opWrite   opKind = "write"
	opRead    opKind = "read"
	opLayout  opKind = "layout"
)

// op is one parsed script line.
type op struct {
	Line int
	Kind opKind
	Name string
	Size int    // alloc, realloc
	Text string // write
}

func (o op) String() string {
	switch o.Kind {
	case opAlloc, opRealloc:
		return fmt.Sprintf("%s %s %d", o.Kind, o.Name, o.Size)
	case opWrite:
		return fmt.Sprintf("%s %s %q", o.Kind, o.Name, o.Text)
	case opLayout:
		return string(o.Kind)
	}
	return fmt.Sprintf("%s %s", o.Kind, o.Name)
}

// parseScript reads one operation per line. Blank lines and everything after
// '#' are ignored, except inside the text of a write.
func parseScript(r io.Reader) ([]op, error) {
	var ops []op
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		o, ok, err := parseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if ok {
			o.Line = line
			ops = append(ops, o)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ops, nil
}

func parseLine(s string) (op, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return op{}, false, nil
	}

	verb, rest, _ := strings.Cut(s, " ")
	kind := opKind(verb)
	if kind == opWrite {
		name, text, ok := strings.Cut(strings.TrimLeft(rest, " \t"), " ")
		if !ok || name == "" {
			return op{}, false, fmt.Errorf("usage: write <name> <text>")
		}
		return op{Kind: kind, Name: name, Text: text}, true, nil
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}
	args := strings.Fields(rest)

	switch kind {
	case opAlloc, opRealloc:
		if len(args) != 2 {
			return op{}, false, fmt.Errorf("usage: %s <name> <size>", kind)
		}
		n, err := parseSize(args[1])
		if err != nil {
			return op{}, false, err
		}
		return op{Kind: kind, Name: args[0], Size: n}, true, nil
	case opFree, opRead:
		if len(args) != 1 {
			return op{}, false, fmt.Errorf("usage: %s <name>", kind)
		}
		return op{Kind: kind, Name: args[0]}, true, nil
	case opLayout:
		if len(args) != 0 {
			return op{}, false, fmt.Errorf("usage: layout")
		}
		return op{Kind: kind}, true, nil
	}
	return op{}, false, fmt.Errorf("unknown operation %q", verb)
}
