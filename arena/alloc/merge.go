package alloc

import "github.com/joshuapare/arenakit/internal/format"

// release frees the section at off and coalesces it with its direct
// neighbours. off must be a chained, non-sentinel Header.
//
// A free next section is unlinked so this section grows over it. If the
// previous section is free, this Header is unlinked instead and the previous
// one now spans both; otherwise the flag is cleared here. Either way the
// released bytes end up in exactly one free section whose neighbours are
// allocated (or the sentinel).
func (al *Allocator) release(off uint32) {
	data := al.data

	next := format.Next(data, off)
	// The sentinel has no successor and must never be absorbed.
	if after := format.Next(data, next); after != format.NullOffset && !format.Allocated(data, next) {
		format.PutNext(data, off, after)
		format.PutPrevious(data, after, off)
		al.touch(off)
		al.touch(after)
		next = after
		al.stats.CoalesceForward++
		if al.debug {
			al.log.Debug("coalesce", "dir", "forward", "off", off, "size", format.SectionSize(data, off))
		}
	}

	prev := format.Previous(data, off)
	if prev != format.NullOffset && !format.Allocated(data, prev) {
		format.PutNext(data, prev, next)
		format.PutPrevious(data, next, prev)
		al.touch(prev)
		al.touch(next)
		al.stats.CoalesceBackward++
		if al.debug {
			al.log.Debug("coalesce", "dir", "backward", "off", prev, "size", format.SectionSize(data, prev))
		}
		return
	}

	format.PutAllocated(data, off, false)
	al.touch(off)
}
