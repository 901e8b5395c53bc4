package format

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/buf"
)

// Header is the decoded form of the metadata record at the start of every
// section. Next and Previous are arena offsets or NullOffset.
type Header struct {
	Offset    uint32
	Next      uint32
	Previous  uint32
	Allocated bool
}

// IsSentinel reports whether h terminates the chain.
func (h Header) IsSentinel() bool { return h.Next == NullOffset }

// IsFirst reports whether h starts the chain.
func (h Header) IsFirst() bool { return h.Previous == NullOffset }

// Size returns the derived payload size of the section. The sentinel has no
// size and reports 0.
func (h Header) Size() int {
	if h.IsSentinel() {
		return 0
	}
	return int(h.Next) - int(h.Offset) - HeaderSize
}

// DecodeHeader decodes the Header stored at off, checking bounds and alignment.
func DecodeHeader(b []byte, off int) (Header, error) {
	if !buf.Has(b, off, HeaderSize) {
		return Header{}, fmt.Errorf("header at %d: %w", off, ErrTruncated)
	}
	if !IsAligned(off) {
		return Header{}, fmt.Errorf("header at %d: %w", off, ErrMisaligned)
	}
	return Header{
		Offset:    uint32(off),
		Next:      ReadU32(b, off+HeaderNextOffset),
		Previous:  ReadU32(b, off+HeaderPreviousOffset),
		Allocated: b[off+HeaderAllocatedOffset] != 0,
	}, nil
}

// PutHeader encodes a full Header at off, zeroing the reserved bytes.
func PutHeader(b []byte, off, next, previous uint32, allocated bool) {
	PutNext(b, off, next)
	PutPrevious(b, off, previous)
	clear(b[int(off)+HeaderAllocatedOffset : int(off)+HeaderSize])
	PutAllocated(b, off, allocated)
}

// Next returns the next link of the Header at off.
func Next(b []byte, off uint32) uint32 { return ReadU32(b, int(off)+HeaderNextOffset) }

// Previous returns the previous link of the Header at off.
func Previous(b []byte, off uint32) uint32 { return ReadU32(b, int(off)+HeaderPreviousOffset) }

// Allocated returns the allocated flag of the Header at off.
func Allocated(b []byte, off uint32) bool { return b[int(off)+HeaderAllocatedOffset] != 0 }

// PutNext sets the next link of the Header at off.
func PutNext(b []byte, off, next uint32) { PutU32(b, int(off)+HeaderNextOffset, next) }

// PutPrevious sets the previous link of the Header at off.
func PutPrevious(b []byte, off, prev uint32) { PutU32(b, int(off)+HeaderPreviousOffset, prev) }

// PutAllocated sets the allocated flag of the Header at off.
func PutAllocated(b []byte, off uint32, allocated bool) {
	if allocated {
		b[int(off)+HeaderAllocatedOffset] = 1
		return
	}
	b[int(off)+HeaderAllocatedOffset] = 0
}

// SectionSize returns the derived payload size of the non-sentinel Header at off.
func SectionSize(b []byte, off uint32) int {
	return int(Next(b, off)) - int(off) - HeaderSize
}
