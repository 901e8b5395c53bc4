package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a Header.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrMisaligned indicates a Header offset that is not word aligned.
	ErrMisaligned = errors.New("format: misaligned header offset")
)
