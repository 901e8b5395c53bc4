// Package dirty records which byte ranges of an arena have been rewritten.
//
// # Overview
//
// The allocator reports every Header it writes through the DirtyTracker
// interface. A Tracker accumulates those reports and hands them back as
// sorted, merged ranges, aligned to a configurable granularity. This is how
// callers observe exactly which metadata an operation touched, for example
// to mirror an arena into another memory or to trace a workload.
//
// # Usage
//
//	tr := dirty.NewTracker(format.HeaderSize)
//	al, err := alloc.New(a, &alloc.Options{Tracker: tr})
//	...
//	p, _ := al.Allocate(64)
//	for _, r := range tr.Ranges() {
//	    fmt.Printf("touched [%d, %d)\n", r.Off, r.End())
//	}
//	tr.Reset()
//
// # Thread Safety
//
// NOT thread-safe. Only one goroutine should use a Tracker at a time.
package dirty
