package dirty

import "slices"

// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
const defaultRangeCapacity = 64

// Range represents a dirty byte range (arena offsets).
type Range struct {
	Off int // Offset in arena
	Len int // Length in bytes
}

// End returns the exclusive end offset of r.
func (r Range) End() int { return r.Off + r.Len }

// Tracker accumulates dirty ranges and merges them on demand.
type Tracker struct {
	ranges []Range
	grain  int
}

var _ DirtyTracker = (*Tracker)(nil)

// NewTracker creates a tracker whose merged ranges are aligned outward to
// multiples of granularity. A granularity <= 1 keeps ranges byte exact.
func NewTracker(granularity int) *Tracker {
	if granularity < 1 {
		granularity = 1
	}
	return &Tracker{
		ranges: make([]Range, 0, defaultRangeCapacity),
		grain:  granularity,
	}
}

// Add records a dirty range. Empty and negative ranges are ignored.
func (t *Tracker) Add(off, length int) {
	if length <= 0 || off < 0 {
		return
	}
	t.ranges = append(t.ranges, Range{Off: off, Len: length})
}

// Len returns the number of raw Add calls recorded since the last Reset.
func (t *Tracker) Len() int { return len(t.ranges) }

// Reset clears all tracked ranges.
func (t *Tracker) Reset() { t.ranges = t.ranges[:0] }

// Ranges aligns all ranges to the tracker granularity, sorts them, and merges
// overlapping or adjacent ranges.
func (t *Tracker) Ranges() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	aligned := make([]Range, len(t.ranges))
	for i, r := range t.ranges {
		start := (r.Off / t.grain) * t.grain
		end := r.End()
		if end%t.grain != 0 {
			end = (end/t.grain + 1) * t.grain
		}
		aligned[i] = Range{Off: start, Len: end - start}
	}

	slices.SortFunc(aligned, func(a, b Range) int { return a.Off - b.Off })

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.End() {
			current.Len = max(current.End(), next.End()) - current.Off
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// Bytes returns the total number of bytes covered by the merged ranges.
func (t *Tracker) Bytes() int {
	n := 0
	for _, r := range t.Ranges() {
		n += r.Len
	}
	return n
}
