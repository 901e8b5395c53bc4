package printer

import (
	"fmt"
	"strings"

	units "github.com/docker/go-units"

	"github.com/joshuapare/arenakit/arena/alloc"
	"github.com/joshuapare/arenakit/internal/format"
)

func (p *Printer) printText() error {
	if p.opts.ShowSections {
		if err := p.printSectionsText(p.src.Sections()); err != nil {
			return err
		}
	}
	if p.opts.ShowUsage {
		if err := p.printUsageText(p.src.Usage()); err != nil {
			return err
		}
	}
	if p.opts.ShowStats {
		return p.printStatsText(p.src.Stats())
	}
	return nil
}

func (p *Printer) printSectionsText(secs []alloc.Section) error {
	if _, err := fmt.Fprintf(p.writer, "%-10s  %-10s  %12s  %-5s\n", "HEADER", "PAYLOAD", "SIZE", "STATE"); err != nil {
		return err
	}
	for _, s := range secs {
		state := "free"
		if s.Allocated {
			state = "alloc"
		}
		_, err := fmt.Fprintf(p.writer, "0x%08X  0x%08X  %12s  %-5s\n",
			s.Offset, uint32(s.Ptr()), p.num.Sprintf("%d", s.Size), state)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printUsageText(u alloc.Usage) error {
	var b strings.Builder
	fmt.Fprintf(&b, "arena      %s\n", p.bytes(u.Capacity))
	fmt.Fprintf(&b, "sections   %s (%s allocated, %s free)\n",
		p.num.Sprintf("%d", u.Sections),
		p.num.Sprintf("%d", u.AllocatedSections),
		p.num.Sprintf("%d", u.FreeSections))
	fmt.Fprintf(&b, "allocated  %s\n", p.bytes(u.Allocated))
	fmt.Fprintf(&b, "free       %s (largest %s)\n", p.bytes(u.Free), p.bytes(u.LargestFree))
	fmt.Fprintf(&b, "overhead   %s (%d-byte headers)\n", p.bytes(u.Overhead), format.HeaderSize)
	fmt.Fprintf(&b, "fragment   %.1f%%\n", u.Fragmentation()*100)
	_, err := fmt.Fprint(p.writer, b.String())
	return err
}

func (p *Printer) printStatsText(s alloc.Stats) error {
	_, err := fmt.Fprintf(p.writer,
		"calls      alloc=%d free=%d realloc=%d failed=%d\n"+
			"layout     splits=%d merge-next=%d merge-prev=%d\n"+
			"realloc    in-place=%d moved=%d copied=%s\n",
		s.AllocCalls, s.FreeCalls, s.ReallocCalls, s.Failures,
		s.Splits, s.CoalesceForward, s.CoalesceBackward,
		s.InPlace, s.Relocations, p.bytes(int(s.BytesCopied)))
	return err
}

// bytes formats a byte count with digit grouping, or in binary units when
// HumanSizes is set.
func (p *Printer) bytes(n int) string {
	if p.opts.HumanSizes {
		return units.BytesSize(float64(n))
	}
	return p.num.Sprintf("%d B", n)
}
