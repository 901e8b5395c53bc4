package alloc

import (
	"log/slog"

	"github.com/joshuapare/arenakit/arena/dirty"
	"github.com/joshuapare/arenakit/internal/format"
)

// Ptr is a payload pointer: the arena offset of the first byte after a Header.
type Ptr uint32

// NullPtr is the null payload pointer. Offset 0 always holds the first
// Header, so it is never a payload.
const NullPtr Ptr = 0

// DirtyTracker is a type alias for the canonical interface defined in arena/dirty.
type DirtyTracker = dirty.DirtyTracker

// Options configures an Allocator. A nil *Options means defaults.
type Options struct {
	// Logger receives debug records for every operation. Default:
	// logger.FromEnv(), which discards unless ARENAKIT_LOG_ALLOC is set.
	Logger *slog.Logger

	// Tracker is told about every Header write (can be nil).
	Tracker DirtyTracker
}

// Section describes one chained section. The sentinel is never reported.
type Section struct {
	Offset    uint32 // Header offset
	Next      uint32 // Next Header offset
	Previous  uint32 // Previous Header offset, format.NullOffset for the first
	Size      int    // Derived payload size
	Allocated bool
}

// Ptr returns the payload pointer of the section.
func (s Section) Ptr() Ptr { return payloadOf(s.Offset) }

// Usage is a point-in-time accounting of the arena.
//
// Allocated + Free + Overhead always equals Capacity.
type Usage struct {
	Capacity          int // Arena length in bytes
	Overhead          int // Bytes held by chained Headers, sentinel included
	Allocated         int // Payload bytes in allocated sections
	Free              int // Payload bytes in free sections
	Sections          int // Chained sections, sentinel excluded
	AllocatedSections int
	FreeSections      int
	LargestFree       int // Largest free section; the biggest request that can succeed
}

// Fragmentation returns 1 - LargestFree/Free: 0 when all free bytes form one
// section, approaching 1 as free space splinters.
func (u Usage) Fragmentation() float64 {
	if u.Free == 0 {
		return 0
	}
	return 1 - float64(u.LargestFree)/float64(u.Free)
}

// Stats holds running allocator counters.
type Stats struct {
	AllocCalls       int   // Allocate() calls
	FreeCalls        int   // Deallocate() calls
	ReallocCalls     int   // Reallocate() calls
	Failures         int   // Calls that returned an error
	Splits           int   // Sections split on allocation
	CoalesceForward  int   // Next neighbour absorbed on release
	CoalesceBackward int   // Section absorbed into previous neighbour on release
	Relocations      int   // Reallocations that moved the payload
	InPlace          int   // Reallocations that kept the payload where it was
	BytesCopied      int64 // Payload bytes moved by relocations
}

// payloadOf converts a Header offset to its payload pointer.
func payloadOf(off uint32) Ptr { return Ptr(off + format.HeaderSize) }
