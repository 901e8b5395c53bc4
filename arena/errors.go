package arena

import "errors"

var (
	// ErrTooSmall indicates a buffer that cannot hold the two boundary Headers.
	ErrTooSmall = errors.New("arena: buffer smaller than two headers")

	// ErrTooLarge indicates a buffer whose offsets would not fit a Header link.
	ErrTooLarge = errors.New("arena: buffer exceeds addressable size")

	// ErrMisaligned indicates a buffer length that is not a whole number of words.
	ErrMisaligned = errors.New("arena: buffer length not word aligned")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("arena: closed")
)
