//go:build unix

package arena

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Map creates an arena backed by an anonymous private mapping, so the managed
// bytes live outside the Go heap and are never scanned by the collector.
func Map(capacity int) (*Arena, error) {
	size, err := checkCapacity(capacity)
	if err != nil {
		return nil, err
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", size, err)
	}
	Format(data)
	return &Arena{
		data: data,
		unmap: func() error {
			err := unix.Munmap(data)
			if errors.Is(err, unix.EINVAL) {
				// Treat double-unmap as no-op for callers.
				return nil
			}
			return err
		},
	}, nil
}
