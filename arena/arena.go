package arena

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/format"
)

// Arena is a formatted, fixed-size region of memory.
type Arena struct {
	data  []byte
	unmap func() error
}

// New allocates a heap-backed arena able to hold capacity bytes, rounded up
// to a whole number of words, and formats it.
func New(capacity int) (*Arena, error) {
	size, err := checkCapacity(capacity)
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	Format(data)
	return &Arena{data: data}, nil
}

// Wrap formats a caller-owned buffer in place and returns an Arena over it.
// The buffer must already be sized to a whole number of words. Any previous
// content is lost.
func Wrap(buf []byte) (*Arena, error) {
	if err := Check(len(buf)); err != nil {
		return nil, err
	}
	Format(buf)
	return &Arena{data: buf}, nil
}

// Adopt returns an Arena over a buffer whose Headers are already in place,
// for example one restored from a snapshot or built by another collaborator.
// Nothing is written; only the length is checked.
func Adopt(buf []byte) (*Arena, error) {
	if err := Check(len(buf)); err != nil {
		return nil, err
	}
	return &Arena{data: buf}, nil
}

// Check reports whether a buffer of length n can back an arena.
func Check(n int) error {
	switch {
	case n < format.MinArenaSize:
		return fmt.Errorf("%w: %d bytes (need %d)", ErrTooSmall, n, format.MinArenaSize)
	case uint64(n) > format.MaxArenaSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, n, uint64(format.MaxArenaSize))
	case !format.IsAligned(n):
		return fmt.Errorf("%w: %d bytes", ErrMisaligned, n)
	}
	return nil
}

// checkCapacity rounds a requested capacity up to a word and validates it.
func checkCapacity(capacity int) (int, error) {
	if capacity < 0 {
		return 0, fmt.Errorf("%w: negative capacity %d", ErrTooSmall, capacity)
	}
	size := format.Align8(capacity)
	if err := Check(size); err != nil {
		return 0, err
	}
	return size, nil
}

// Format writes the two boundary Headers into buf: the first Header at offset
// 0 covering every byte up to the sentinel, and the sentinel at
// len(buf)-HeaderSize. The caller guarantees len(buf) passed Check.
func Format(buf []byte) {
	sentinel := uint32(len(buf) - format.HeaderSize)
	format.PutHeader(buf, 0, sentinel, format.NullOffset, false)
	format.PutHeader(buf, sentinel, format.NullOffset, 0, false)
}

// Bytes returns the backing buffer. Nil after Close.
func (a *Arena) Bytes() []byte { return a.data }

// Len returns the total arena size in bytes, Header overhead included.
func (a *Arena) Len() int { return len(a.data) }

// Sentinel returns the offset of the terminating Header.
func (a *Arena) Sentinel() uint32 { return uint32(len(a.data) - format.HeaderSize) }

// Capacity returns the payload bytes available in a freshly formatted arena.
func (a *Arena) Capacity() int { return len(a.data) - format.MinArenaSize }

// Closed reports whether Close has been called.
func (a *Arena) Closed() bool { return a.data == nil }

// Close releases mapped memory. Heap-backed arenas just drop their buffer.
// Calling Close more than once is a no-op.
func (a *Arena) Close() error {
	if a.data == nil {
		return nil
	}
	a.data = nil
	if a.unmap == nil {
		return nil
	}
	unmap := a.unmap
	a.unmap = nil
	return unmap()
}
