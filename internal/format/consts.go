// Package format houses the low-level layout of an arena: the section Header
// record, its field offsets, and the word alignment every Header sits on.
// Higher-level packages never touch raw offsets directly; they go through the
// accessors here so the layout lives in exactly one place.
package format

const (
	// WordSize is the native word the arena is aligned to. Headers and
	// payloads always start on a word boundary.
	WordSize = 8

	// WordMask is the bitmask used for aligning to word boundaries (WordSize - 1).
	WordMask = WordSize - 1

	// HeaderSize is the storage size of one section Header, padded to a
	// whole number of words.
	//
	// Header layout (little-endian):
	//
	//	Offset  Size  Description
	//	0x00    4     next: offset of the following Header, NullOffset for the sentinel
	//	0x04    4     previous: offset of the preceding Header, NullOffset for the first
	//	0x08    1     allocated flag (0 = free, 1 = in use)
	//	0x09    7     reserved, always zero
	HeaderSize = 0x10

	// Header field offsets.
	HeaderNextOffset      = 0x00
	HeaderPreviousOffset  = 0x04
	HeaderAllocatedOffset = 0x08

	// MinArenaSize is the smallest arena that can hold the two boundary
	// Headers. Such an arena has no allocatable bytes.
	MinArenaSize = 2 * HeaderSize

	// NullOffset is the null link value. It can never be a Header offset
	// because every Header offset is word aligned.
	NullOffset = 0xFFFFFFFF

	// MaxArenaSize is the largest arena addressable with uint32 links.
	MaxArenaSize = NullOffset &^ WordMask
)
