// Package alloc implements best-fit allocation inside a fixed arena.
//
// # Overview
//
// The arena is a chain of section Headers in ascending offset order. Each
// Header links to its neighbours and carries one flag, allocated. A section's
// size is never stored: it is the distance to the next Header minus one
// Header. There is no separate free list; the chain itself is the index, so
// every operation is linear in the number of sections.
//
// # Operations
//
//   - Allocate(size): Finder picks the tightest free section that fits, then
//     Splitter marks it allocated and carves off the remainder when the
//     remainder can hold a Header of its own
//   - Deallocate(p): Merger clears the flag and folds in the free neighbour on
//     either side
//   - Reallocate(p, size): Merger, then Finder over the updated chain, then a
//     copy if the winner is a different section, then Splitter
//
// Coalescing is immediate and local: a release looks at its two direct
// neighbours only. Because every release does this, no two chained
// neighbours are ever both free once a call returns.
//
// # Reallocate is destructive on failure
//
// Reallocate releases the old section BEFORE it searches, so the old bytes
// (and their free neighbours) are candidates for the new size. The flip side
// is that a failed Reallocate leaves the old section released: the caller's
// pointer is dead and its content is no longer reserved. Reallocate(p, 0)
// therefore frees p and reports ErrZeroSize. Reallocate may also move a
// section that is shrinking. Always use the returned pointer.
//
// # Pointers
//
// A Ptr is the arena offset of the first payload byte. Pointers passed back
// in are bounds-checked and resolved against the live chain: foreign or
// interior pointers fail with ErrBadPtr and double frees with
// ErrNotAllocated, instead of corrupting the arena.
//
// # Usage Example
//
//	a, err := arena.New(4096)
//	if err != nil {
//	    return err
//	}
//	al, err := alloc.New(a, nil)
//	if err != nil {
//	    return err
//	}
//
//	p, err := al.Allocate(100)
//	if err != nil {
//	    return err
//	}
//	payload, _ := al.Bytes(p)
//	copy(payload, "hello")
//
//	p, err = al.Reallocate(p, 200)
//	...
//	err = al.Deallocate(p)
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Related Packages
//
//   - github.com/joshuapare/arenakit/arena: backing storage and boundary Headers
//   - github.com/joshuapare/arenakit/arena/dirty: records which Headers an operation wrote
//   - github.com/joshuapare/arenakit/arena/verify: chain invariant checks
package alloc
