// Package verify provides validation functions for arena Header chains.
// These helpers are used in tests after every mutation and by arenactl to
// confirm a workload left the arena consistent.
package verify
