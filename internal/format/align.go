package format

// Rounding helpers. The allocator core works in bytes; these are the only
// places a byte count is turned into something word aligned.

// Align8 returns n aligned up to the next word boundary.
//
// Example:
//
//	Align8(0)  = 0
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + WordMask) &^ WordMask
}

// IsAligned reports whether off sits on a word boundary.
func IsAligned(off int) bool {
	return off&WordMask == 0
}
