package alloc

import "errors"

var (
	// ErrNoSpace indicates that no free section large enough was found.
	ErrNoSpace = errors.New("alloc: no free section large enough")

	// ErrZeroSize indicates a request for zero bytes, which never succeeds.
	ErrZeroSize = errors.New("alloc: zero-size request")

	// ErrNegativeSize indicates a negative byte count.
	ErrNegativeSize = errors.New("alloc: negative size")

	// ErrBadPtr indicates a pointer that is not the payload of a chained section.
	ErrBadPtr = errors.New("alloc: bad pointer")

	// ErrNotAllocated indicates a pointer to a section that is already free.
	ErrNotAllocated = errors.New("alloc: section not allocated")

	// ErrNotFormatted indicates an arena whose boundary Headers are missing or broken.
	ErrNotFormatted = errors.New("alloc: arena not formatted")
)
