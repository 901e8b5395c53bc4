package verify

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/format"
)

// ValidationError describes the first invariant violation found.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// All validates all chain invariants in one call.
// Returns the first error encountered, or nil if all checks pass.
func All(data []byte) error {
	if err := Chain(data); err != nil {
		return err
	}
	return Coalesced(data)
}

// Chain validates the Header chain structure:
//   - the buffer is word aligned and holds at least two Headers
//   - every Header is word aligned and inside the buffer
//   - offsets strictly ascend and every previous link points back
//   - only the first Header lacks a previous link
//   - the chain ends at a sentinel placed exactly at len-HeaderSize
//
// Together these mean every byte belongs to exactly one Header or payload.
func Chain(data []byte) error {
	if len(data) < format.MinArenaSize || !format.IsAligned(len(data)) {
		return &ValidationError{
			Type:    "Chain",
			Message: fmt.Sprintf("bad arena length %d", len(data)),
			Offset:  -1,
		}
	}

	last := len(data) - format.HeaderSize
	prev := uint32(format.NullOffset)
	off := uint32(0)
	// A valid chain has at most one Header per HeaderSize bytes; anything
	// longer is a cycle.
	for steps := 0; steps <= len(data)/format.HeaderSize; steps++ {
		h, err := format.DecodeHeader(data, int(off))
		if err != nil {
			return &ValidationError{Type: "Chain", Message: err.Error(), Offset: int(off)}
		}
		if h.Previous != prev {
			return &ValidationError{
				Type:    "Chain",
				Message: fmt.Sprintf("previous link 0x%X, expected 0x%X", h.Previous, prev),
				Offset:  int(off),
			}
		}
		if h.IsSentinel() {
			if int(off) != last {
				return &ValidationError{
					Type:    "Chain",
					Message: fmt.Sprintf("sentinel found early, arena ends at 0x%X", len(data)),
					Offset:  int(off),
				}
			}
			return nil
		}
		if int(h.Next) < int(off)+format.HeaderSize || int(h.Next) > last {
			return &ValidationError{
				Type:    "Chain",
				Message: fmt.Sprintf("next link 0x%X out of range", h.Next),
				Offset:  int(off),
			}
		}
		prev, off = off, h.Next
	}
	return &ValidationError{Type: "Chain", Message: "chain does not terminate", Offset: -1}
}

// Coalesced reports two chained neighbours that are both free. Call it only
// on a chain that passed Chain.
func Coalesced(data []byte) error {
	prevFree := false
	for off := uint32(0); ; {
		next := format.Next(data, off)
		if next == format.NullOffset {
			return nil
		}
		free := !format.Allocated(data, off)
		if free && prevFree {
			return &ValidationError{
				Type:    "Coalesced",
				Message: fmt.Sprintf("free section follows free section 0x%X", format.Previous(data, off)),
				Offset:  int(off),
			}
		}
		prevFree = free
		off = next
	}
}
