package alloc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/internal/buf"
	"github.com/joshuapare/arenakit/internal/format"
	"github.com/joshuapare/arenakit/internal/logger"
)

// Allocator hands out sections of one arena.
type Allocator struct {
	a    *arena.Arena
	data []byte
	dt   DirtyTracker

	log   *slog.Logger
	debug bool // cached log.Enabled(Debug) so the hot path skips arg boxing

	stats Stats
}

// New creates an allocator over a formatted arena. The boundary Headers are
// checked but never rewritten; existing sections are adopted as they are.
func New(a *arena.Arena, opts *Options) (*Allocator, error) {
	if opts == nil {
		opts = &Options{}
	}
	if a == nil {
		return nil, fmt.Errorf("%w: no arena", ErrNotFormatted)
	}
	if a.Closed() {
		return nil, fmt.Errorf("%w: %w", ErrNotFormatted, arena.ErrClosed)
	}
	if err := checkBoundaries(a.Bytes()); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.FromEnv()
	}
	return &Allocator{
		a:     a,
		data:  a.Bytes(),
		dt:    opts.Tracker,
		log:   log,
		debug: log.Enabled(context.Background(), slog.LevelDebug),
	}, nil
}

// checkBoundaries validates the first Header and the sentinel.
func checkBoundaries(data []byte) error {
	if err := arena.Check(len(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFormatted, err)
	}
	first, err := format.DecodeHeader(data, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotFormatted, err)
	}
	if !first.IsFirst() {
		return fmt.Errorf("%w: first header has previous link 0x%X", ErrNotFormatted, first.Previous)
	}
	last := len(data) - format.HeaderSize
	sentinel, err := format.DecodeHeader(data, last)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotFormatted, err)
	}
	if !sentinel.IsSentinel() {
		return fmt.Errorf("%w: no sentinel at 0x%X", ErrNotFormatted, last)
	}
	if first.Next == format.NullOffset || int(first.Next) > last || !format.IsAligned(int(first.Next)) {
		return fmt.Errorf("%w: first header next link 0x%X out of range", ErrNotFormatted, first.Next)
	}
	return nil
}

// Arena returns the arena this allocator manages.
func (al *Allocator) Arena() *arena.Arena { return al.a }

// Allocate returns a pointer to at least size bytes. The request is rounded
// up to a whole word. Zero-size requests always fail with ErrZeroSize.
func (al *Allocator) Allocate(size int) (Ptr, error) {
	al.stats.AllocCalls++
	p, err := al.allocate(size)
	if err != nil {
		al.stats.Failures++
		if al.debug {
			al.log.Debug("alloc failed", "size", size, "err", err)
		}
		return NullPtr, err
	}
	if al.debug {
		al.log.Debug("alloc", "size", size, "ptr", p)
	}
	return p, nil
}

func (al *Allocator) allocate(size int) (Ptr, error) {
	if err := al.checkOpen(); err != nil {
		return NullPtr, err
	}
	need, err := al.need(size)
	if err != nil {
		return NullPtr, err
	}
	fit := al.find(need)
	if !fit.found() {
		return NullPtr, fmt.Errorf("%w: need %d bytes", ErrNoSpace, need)
	}
	return al.allocateSection(fit, need), nil
}

// need validates a request and rounds it up to the word size.
func (al *Allocator) need(size int) (int, error) {
	switch {
	case size < 0:
		return 0, fmt.Errorf("%w: %d", ErrNegativeSize, size)
	case size == 0:
		return 0, ErrZeroSize
	case size > len(al.data):
		return 0, fmt.Errorf("%w: %d bytes exceeds arena of %d", ErrNoSpace, size, len(al.data))
	}
	return format.Align8(size), nil
}

// Deallocate releases the section behind p and coalesces it with free
// neighbours.
func (al *Allocator) Deallocate(p Ptr) error {
	al.stats.FreeCalls++
	off, err := al.resolve(p)
	if err != nil {
		al.stats.Failures++
		al.log.Warn("free rejected", "ptr", p, "err", err)
		return err
	}
	al.release(off)
	if al.debug {
		al.log.Debug("free", "ptr", p)
	}
	return nil
}

// Reallocate resizes the section behind p, possibly moving it, and returns
// the new pointer. A NullPtr p behaves like Allocate.
//
// The old section is released before the search, so on failure it stays
// released and its content is no longer reserved. See the package docs.
func (al *Allocator) Reallocate(p Ptr, size int) (Ptr, error) {
	al.stats.ReallocCalls++
	np, err := al.reallocate(p, size)
	if err != nil {
		al.stats.Failures++
		if al.debug {
			al.log.Debug("realloc failed", "ptr", p, "size", size, "err", err)
		}
		return NullPtr, err
	}
	if al.debug {
		al.log.Debug("realloc", "ptr", p, "size", size, "new", np)
	}
	return np, nil
}

func (al *Allocator) reallocate(p Ptr, size int) (Ptr, error) {
	if p == NullPtr {
		return al.allocate(size)
	}
	if size < 0 {
		return NullPtr, fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	off, err := al.resolve(p)
	if err != nil {
		al.log.Warn("realloc rejected", "ptr", p, "err", err)
		return NullPtr, err
	}

	oldSize := format.SectionSize(al.data, off)
	al.release(off)

	need, err := al.need(size)
	if err != nil {
		return NullPtr, err
	}
	fit := al.find(need)
	if !fit.found() {
		return NullPtr, fmt.Errorf("%w: need %d bytes, old section released", ErrNoSpace, need)
	}

	if fit.off == off {
		al.stats.InPlace++
	} else {
		n := min(need, oldSize)
		dst := int(payloadOf(fit.off))
		// Source and destination overlap when the old section was folded
		// into its previous neighbour; copy is memmove-safe.
		copy(al.data[dst:dst+n], al.data[int(p):int(p)+n])
		al.stats.Relocations++
		al.stats.BytesCopied += int64(n)
	}
	return al.allocateSection(fit, need), nil
}

// Bytes returns the full payload of the allocated section behind p. The slice
// aliases the arena and is only valid until p is released or reallocated.
func (al *Allocator) Bytes(p Ptr) ([]byte, error) {
	off, err := al.resolve(p)
	if err != nil {
		return nil, err
	}
	b, ok := buf.Slice(al.data, int(p), format.SectionSize(al.data, off))
	if !ok {
		return nil, fmt.Errorf("%w: payload of 0x%X out of bounds", ErrBadPtr, p)
	}
	return b, nil
}

// Size returns the usable payload size of the allocated section behind p. It
// can exceed the requested size by the word rounding plus any slack too small
// to split off.
func (al *Allocator) Size(p Ptr) (int, error) {
	off, err := al.resolve(p)
	if err != nil {
		return 0, err
	}
	return format.SectionSize(al.data, off), nil
}

// resolve maps a payload pointer back to its Header offset. The pointer must
// be word aligned, inside the arena, and name a chained, allocated section.
func (al *Allocator) resolve(p Ptr) (uint32, error) {
	if err := al.checkOpen(); err != nil {
		return 0, err
	}
	if int(p) < format.HeaderSize || !format.IsAligned(int(p)) ||
		!buf.Has(al.data, int(p)-format.HeaderSize, format.HeaderSize) {
		return 0, fmt.Errorf("%w: 0x%X outside arena", ErrBadPtr, p)
	}
	want := uint32(p) - format.HeaderSize
	for off := uint32(0); off <= want; {
		next := format.Next(al.data, off)
		if next == format.NullOffset {
			break
		}
		if off == want {
			if !format.Allocated(al.data, off) {
				return 0, fmt.Errorf("%w: 0x%X", ErrNotAllocated, p)
			}
			return off, nil
		}
		off = next
	}
	return 0, fmt.Errorf("%w: 0x%X is not a section payload", ErrBadPtr, p)
}

// checkOpen fails once the arena has been closed. A mapped arena's bytes are
// gone at that point and must not be read.
func (al *Allocator) checkOpen() error {
	if al.a.Closed() {
		return fmt.Errorf("%w: %w", ErrNotFormatted, arena.ErrClosed)
	}
	return nil
}

// touch reports a Header write to the dirty tracker.
func (al *Allocator) touch(off uint32) {
	if al.dt != nil {
		al.dt.Add(int(off), format.HeaderSize)
	}
}
