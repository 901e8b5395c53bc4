package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	src := `
# setup
alloc a 100
alloc b 4k   # binary suffix
write a hello # not a comment
read a
realloc a 1KiB
free b
layout
`
	ops, err := parseScript(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []op{
		{Line: 3, Kind: opAlloc, Name: "a", Size: 100},
		{Line: 4, Kind: opAlloc, Name: "b", Size: 4096},
		{Line: 5, Kind: opWrite, Name: "a", Text: "hello # not a comment"},
		{Line: 6, Kind: opRead, Name: "a"},
		{Line: 7, Kind: opRealloc, Name: "a", Size: 1024},
		{Line: 8, Kind: opFree, Name: "b"},
		{Line: 9, Kind: opLayout},
	}, ops)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown verb", "grow a 10", `line 1: unknown operation "grow"`},
		{"missing size", "alloc a", "line 1: usage: alloc <name> <size>"},
		{"bad size", "\nalloc a lots", "line 2: invalid size"},
		{"negative size", "realloc a -8", "line 1: invalid size"},
		{"extra args", "free a b", "line 1: usage: free <name>"},
		{"write without text", "write a", "line 1: usage: write <name> <text>"},
		{"layout args", "layout now", "line 1: usage: layout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScript(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "alloc a 16", op{Kind: opAlloc, Name: "a", Size: 16}.String())
	assert.Equal(t, `write a "hi"`, op{Kind: opWrite, Name: "a", Text: "hi"}.String())
	assert.Equal(t, "free a", op{Kind: opFree, Name: "a"}.String())
	assert.Equal(t, "layout", op{Kind: opLayout}.String())
}
