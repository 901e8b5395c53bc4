package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/verify"
	"github.com/joshuapare/arenakit/internal/format"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestAllocator creates an allocator over a freshly formatted heap arena.
func newTestAllocator(t testing.TB, capacity int) *Allocator {
	t.Helper()
	a, err := arena.New(capacity)
	require.NoError(t, err)
	al, err := New(a, nil)
	require.NoError(t, err)
	return al
}

// newAllocatorWithLayout builds a chain by hand: one section per entry with
// that payload size, negative sizes are allocated. The sentinel is appended.
// Returns the allocator and the Header offset of every section, in order.
func newAllocatorWithLayout(t testing.TB, sizes ...int) (*Allocator, []uint32) {
	t.Helper()

	total := format.HeaderSize
	for _, s := range sizes {
		require.True(t, format.IsAligned(abs(s)), "layout size %d not word aligned", s)
		total += format.HeaderSize + abs(s)
	}
	data := make([]byte, total)

	offsets := make([]uint32, 0, len(sizes))
	off := uint32(0)
	prev := uint32(format.NullOffset)
	for _, s := range sizes {
		next := off + uint32(format.HeaderSize+abs(s))
		format.PutHeader(data, off, next, prev, s < 0)
		offsets = append(offsets, off)
		prev, off = off, next
	}
	format.PutHeader(data, off, format.NullOffset, prev, false)

	a, err := arena.Adopt(data)
	require.NoError(t, err)

	al, err := New(a, nil)
	require.NoError(t, err)
	require.NoError(t, verify.Chain(al.data), "hand-built layout is broken")
	return al, offsets
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// getSection reads a section Header and returns its derived size and allocated flag.
func getSection(al *Allocator, off uint32) (int, bool) {
	return format.SectionSize(al.data, off), format.Allocated(al.data, off)
}

// sectionShape reduces the chain to (offset, size, allocated) triples.
type shape struct {
	Off       uint32
	Size      int
	Allocated bool
}

func sectionShape(al *Allocator) []shape {
	var out []shape
	for _, s := range al.Sections() {
		out = append(out, shape{Off: s.Offset, Size: s.Size, Allocated: s.Allocated})
	}
	return out
}

// fill writes a recognisable pattern into the payload behind p.
func fill(t testing.TB, al *Allocator, p Ptr, seed byte) []byte {
	t.Helper()
	b, err := al.Bytes(p)
	require.NoError(t, err)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return append([]byte(nil), b...)
}

// ============================================================================
// Invariant Checking
// ============================================================================

// assertInvariants checks chain structure, local coalescing, and byte accounting.
func assertInvariants(t testing.TB, al *Allocator) {
	t.Helper()

	require.NoError(t, verify.All(al.data))

	u := al.Usage()
	assert.Equal(t, u.Capacity, u.Allocated+u.Free+u.Overhead,
		"accounting: allocated(%d) + free(%d) + overhead(%d) != capacity(%d)",
		u.Allocated, u.Free, u.Overhead, u.Capacity)
	assert.Equal(t, (u.Sections+1)*format.HeaderSize, u.Overhead)
	assert.LessOrEqual(t, u.Allocated, u.Capacity-u.Overhead)
	assert.Equal(t, u.Sections, u.AllocatedSections+u.FreeSections)
}
