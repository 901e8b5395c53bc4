//go:build !unix

package arena

// Map falls back to a heap-backed arena where anonymous mappings are not
// available.
func Map(capacity int) (*Arena, error) {
	return New(capacity)
}
