package alloc

import "github.com/joshuapare/arenakit/internal/format"

// Sections returns a snapshot of the chain in offset order, sentinel excluded.
// A closed arena has no sections.
func (al *Allocator) Sections() []Section {
	var out []Section
	al.walk(func(s Section) {
		out = append(out, s)
	})
	return out
}

// Usage walks the chain and accounts for every byte of the arena. A closed
// arena reports zero usage.
func (al *Allocator) Usage() Usage {
	if al.a.Closed() {
		return Usage{}
	}
	u := Usage{
		Capacity: len(al.data),
		Overhead: format.HeaderSize, // sentinel
	}
	al.walk(func(s Section) {
		u.Sections++
		u.Overhead += format.HeaderSize
		if s.Allocated {
			u.AllocatedSections++
			u.Allocated += s.Size
			return
		}
		u.FreeSections++
		u.Free += s.Size
		u.LargestFree = max(u.LargestFree, s.Size)
	})
	return u
}

// Stats returns a copy of the running counters.
func (al *Allocator) Stats() Stats { return al.stats }

// ResetStats zeroes the running counters.
func (al *Allocator) ResetStats() { al.stats = Stats{} }

func (al *Allocator) walk(fn func(Section)) {
	if al.a.Closed() {
		return
	}
	data := al.data
	for off := uint32(0); ; {
		next := format.Next(data, off)
		if next == format.NullOffset {
			return
		}
		fn(Section{
			Offset:    off,
			Next:      next,
			Previous:  format.Previous(data, off),
			Size:      int(next) - int(off) - format.HeaderSize,
			Allocated: format.Allocated(data, off),
		})
		off = next
	}
}
