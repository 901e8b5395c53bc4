// Package arena owns the fixed-size backing buffer an allocator manages.
//
// # Overview
//
// An Arena is a contiguous byte buffer interpreted as a chain of section
// Headers in ascending offset order. This package performs the one-time
// initialization the allocator assumes has already happened: the buffer is
// sized to a whole number of words and two boundary Headers are written.
//
//	offset 0                                          len-16
//	+--------+--------------------------------------+--------+
//	| first  |        free payload (len - 32)       |sentinel|
//	+--------+--------------------------------------+--------+
//
// The first Header has no previous link, the sentinel has no next link, and
// the sentinel is never allocatable.
//
// # Backing storage
//
//   - New: an ordinary Go byte slice
//   - Wrap: a caller-owned buffer, formatted in place
//   - Adopt: a buffer whose Headers are already in place, left untouched
//   - Map: an anonymous private memory mapping that lives outside the Go heap
//     (unix only, falls back to New elsewhere)
//
// The arena itself never grows, shrinks, or moves.
//
// # Thread Safety
//
// Arena instances are not thread-safe. Callers sharing one across goroutines
// must serialize access themselves.
package arena
