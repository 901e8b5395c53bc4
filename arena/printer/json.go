package printer

import (
	"encoding/json"

	"github.com/joshuapare/arenakit/arena/alloc"
)

// jsonSection represents one section in JSON format.
type jsonSection struct {
	Offset    uint32 `json:"offset"`
	Ptr       uint32 `json:"ptr"`
	Size      int    `json:"size"`
	Allocated bool   `json:"allocated"`
}

// jsonUsage mirrors alloc.Usage with stable field names.
type jsonUsage struct {
	Capacity          int     `json:"capacity"`
	Overhead          int     `json:"overhead"`
	Allocated         int     `json:"allocated"`
	Free              int     `json:"free"`
	Sections          int     `json:"sections"`
	AllocatedSections int     `json:"allocated_sections"`
	FreeSections      int     `json:"free_sections"`
	LargestFree       int     `json:"largest_free"`
	Fragmentation     float64 `json:"fragmentation"`
}

type jsonStats struct {
	AllocCalls       int   `json:"alloc_calls"`
	FreeCalls        int   `json:"free_calls"`
	ReallocCalls     int   `json:"realloc_calls"`
	Failures         int   `json:"failures"`
	Splits           int   `json:"splits"`
	CoalesceForward  int   `json:"coalesce_forward"`
	CoalesceBackward int   `json:"coalesce_backward"`
	Relocations      int   `json:"relocations"`
	InPlace          int   `json:"in_place"`
	BytesCopied      int64 `json:"bytes_copied"`
}

type jsonReport struct {
	Sections []jsonSection `json:"sections,omitempty"`
	Usage    *jsonUsage    `json:"usage,omitempty"`
	Stats    *jsonStats    `json:"stats,omitempty"`
}

func (p *Printer) printJSON() error {
	var rep jsonReport
	if p.opts.ShowSections {
		secs := p.src.Sections()
		rep.Sections = make([]jsonSection, 0, len(secs))
		for _, s := range secs {
			rep.Sections = append(rep.Sections, jsonSection{
				Offset:    s.Offset,
				Ptr:       uint32(s.Ptr()),
				Size:      s.Size,
				Allocated: s.Allocated,
			})
		}
	}
	if p.opts.ShowUsage {
		u := p.src.Usage()
		rep.Usage = &jsonUsage{
			Capacity:          u.Capacity,
			Overhead:          u.Overhead,
			Allocated:         u.Allocated,
			Free:              u.Free,
			Sections:          u.Sections,
			AllocatedSections: u.AllocatedSections,
			FreeSections:      u.FreeSections,
			LargestFree:       u.LargestFree,
			Fragmentation:     u.Fragmentation(),
		}
	}
	if p.opts.ShowStats {
		rep.Stats = statsJSON(p.src.Stats())
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func statsJSON(s alloc.Stats) *jsonStats {
	return &jsonStats{
		AllocCalls:       s.AllocCalls,
		FreeCalls:        s.FreeCalls,
		ReallocCalls:     s.ReallocCalls,
		Failures:         s.Failures,
		Splits:           s.Splits,
		CoalesceForward:  s.CoalesceForward,
		CoalesceBackward: s.CoalesceBackward,
		Relocations:      s.Relocations,
		InPlace:          s.InPlace,
		BytesCopied:      s.BytesCopied,
	}
}
