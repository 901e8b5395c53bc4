package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/internal/format"
)

// TestReallocate_NullIsAllocate verifies Reallocate(NullPtr, n) matches
// Allocate(n) on an identical arena.
func TestReallocate_NullIsAllocate(t *testing.T) {
	a := newTestAllocator(t, 512)
	b := newTestAllocator(t, 512)

	pa, err := a.Allocate(40)
	require.NoError(t, err)
	pb, err := b.Reallocate(NullPtr, 40)
	require.NoError(t, err)

	assert.Equal(t, pa, pb)
	assert.Equal(t, sectionShape(a), sectionShape(b))
	assert.Equal(t, a.data, b.data)
}

// TestReallocate_GrowInPlace verifies a section grows over the free space that
// follows it without moving.
func TestReallocate_GrowInPlace(t *testing.T) {
	al := newTestAllocator(t, 512)
	p, err := al.Allocate(32)
	require.NoError(t, err)
	want := fill(t, al, p, 0x10)

	np, err := al.Reallocate(p, 96)
	require.NoError(t, err)
	assert.Equal(t, p, np, "only free space is right after p")

	got, err := al.Bytes(np)
	require.NoError(t, err)
	assert.Equal(t, 96, len(got))
	assert.Equal(t, want, got[:32])

	stats := al.Stats()
	assert.Equal(t, 1, stats.InPlace)
	assert.Equal(t, 0, stats.Relocations)
	assertInvariants(t, al)
}

// TestReallocate_ShrinkInPlace verifies shrinking the only allocation keeps it
// where it is and hands the tail back.
func TestReallocate_ShrinkInPlace(t *testing.T) {
	al := newTestAllocator(t, 512)
	p, err := al.Allocate(128)
	require.NoError(t, err)
	want := fill(t, al, p, 0x20)

	np, err := al.Reallocate(p, 32)
	require.NoError(t, err)
	assert.Equal(t, p, np)

	got, err := al.Bytes(np)
	require.NoError(t, err)
	assert.Equal(t, want[:32], got)
	assert.Len(t, al.Sections(), 2)
	assertInvariants(t, al)
}

// TestReallocate_ShrinkRelocates verifies shrinking may move the section to a
// tighter free section, preserving the first newSize bytes.
func TestReallocate_ShrinkRelocates(t *testing.T) {
	// Layout: [alloc 16][free 32][alloc 16][alloc 64 P][alloc 16]
	al, offs := newAllocatorWithLayout(t, -16, 32, -16, -64, -16)
	p := payloadOf(offs[3])
	want := fill(t, al, p, 0x30)

	np, err := al.Reallocate(p, 32)
	require.NoError(t, err)
	assert.Equal(t, payloadOf(offs[1]), np, "the 32-byte hole is the best fit")

	got, err := al.Bytes(np)
	require.NoError(t, err)
	assert.Equal(t, want[:32], got)

	size, allocated := getSection(al, offs[3])
	assert.Equal(t, 64, size)
	assert.False(t, allocated, "old section stays released")

	stats := al.Stats()
	assert.Equal(t, 1, stats.Relocations)
	assert.Equal(t, int64(32), stats.BytesCopied)
	assertInvariants(t, al)
}

// TestReallocate_GrowIntoPrevious verifies growth into a free previous
// neighbour, where the source and destination overlap.
func TestReallocate_GrowIntoPrevious(t *testing.T) {
	// Layout: [free 16][alloc 32 P][alloc 16]
	al, offs := newAllocatorWithLayout(t, 16, -32, -16)
	p := payloadOf(offs[1])
	want := fill(t, al, p, 0x40)

	np, err := al.Reallocate(p, 48)
	require.NoError(t, err)
	assert.Equal(t, payloadOf(offs[0]), np)

	got, err := al.Bytes(np)
	require.NoError(t, err)
	// 16 + 16 + 32 = 64 merged; 64 - 48 is not more than a Header, so no split.
	assert.Len(t, got, 64)
	assert.Equal(t, want, got[:32], "overlapping move must preserve content")
	assertInvariants(t, al)
}

// TestReallocate_FailureIsDestructive pins the documented contract: a failed
// Reallocate leaves the old section released.
func TestReallocate_FailureIsDestructive(t *testing.T) {
	al, offs := newAllocatorWithLayout(t, -16, -32, -16)
	p := payloadOf(offs[1])

	_, err := al.Reallocate(p, 4096)
	require.ErrorIs(t, err, ErrNoSpace)

	_, allocated := getSection(al, offs[1])
	assert.False(t, allocated, "old section was released before the search")
	require.ErrorIs(t, al.Deallocate(p), ErrNotAllocated)
	assertInvariants(t, al)
}

// TestReallocate_ZeroFrees verifies Reallocate(p, 0) releases p and fails.
func TestReallocate_ZeroFrees(t *testing.T) {
	al := newTestAllocator(t, 256)
	p, err := al.Allocate(64)
	require.NoError(t, err)

	_, err = al.Reallocate(p, 0)
	require.ErrorIs(t, err, ErrZeroSize)
	assert.Equal(t, []shape{{Off: 0, Size: 256 - 2*format.HeaderSize}}, sectionShape(al))
}

// TestReallocate_RejectsBadInput verifies invalid pointers and sizes fail
// without releasing anything.
func TestReallocate_RejectsBadInput(t *testing.T) {
	al, offs := newAllocatorWithLayout(t, -16, -32, 16)
	before := sectionShape(al)

	_, err := al.Reallocate(payloadOf(offs[1])+8, 16)
	require.ErrorIs(t, err, ErrBadPtr)

	_, err = al.Reallocate(payloadOf(offs[2]), 16)
	require.ErrorIs(t, err, ErrNotAllocated)

	_, err = al.Reallocate(payloadOf(offs[1]), -4)
	require.ErrorIs(t, err, ErrNegativeSize)

	assert.Equal(t, before, sectionShape(al))
	assert.Equal(t, 3, al.Stats().Failures)
}
