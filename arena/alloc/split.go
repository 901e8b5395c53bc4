package alloc

import "github.com/joshuapare/arenakit/internal/format"

// allocateSection marks fit allocated and returns its payload pointer.
//
// When the section exceeds need by more than one Header, a new free Header is
// written right after the need bytes and spliced in between fit and its old
// next. Otherwise the slack (at most one Header) stays inside the allocated
// section until it is released or grows again.
func (al *Allocator) allocateSection(fit bestFit, need int) Ptr {
	data := al.data
	if fit.size > need+format.HeaderSize {
		tail := fit.off + uint32(format.HeaderSize+need)
		next := format.Next(data, fit.off)
		format.PutHeader(data, tail, next, fit.off, false)
		format.PutPrevious(data, next, tail)
		format.PutNext(data, fit.off, tail)
		al.touch(tail)
		al.touch(next)
		al.stats.Splits++
		if al.debug {
			al.log.Debug("split", "off", fit.off, "size", fit.size, "need", need, "tail", tail,
				"remainder", fit.size-need-format.HeaderSize)
		}
	}
	format.PutAllocated(data, fit.off, true)
	al.touch(fit.off)
	return payloadOf(fit.off)
}
