package alloc

import (
	"math"

	"github.com/joshuapare/arenakit/internal/format"
)

// bestFit is the Finder result. A miss carries NullOffset and a size larger
// than any real section.
type bestFit struct {
	off  uint32
	size int
}

var noFit = bestFit{off: format.NullOffset, size: math.MaxInt}

func (f bestFit) found() bool { return f.off != format.NullOffset }

// find walks the chain from the first Header up to, not including, the
// sentinel and returns the smallest free section of at least need bytes.
// Ties keep the earliest section. A zero need never fits.
func (al *Allocator) find(need int) bestFit {
	fit := noFit
	if need == 0 {
		return fit
	}
	data := al.data
	for off := uint32(0); ; {
		next := format.Next(data, off)
		if next == format.NullOffset {
			break
		}
		size := int(next) - int(off) - format.HeaderSize
		if size >= need && size < fit.size && !format.Allocated(data, off) {
			fit = bestFit{off: off, size: size}
			if size == need {
				// Nothing can be tighter, and ties keep the earliest.
				break
			}
		}
		off = next
	}
	return fit
}
