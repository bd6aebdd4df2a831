package sat

import "fmt"

// arena is a flat, monotonically growing buffer of signed integers
// addressed by offset rather than by pointer. Clauses and their watch
// links are carved out of it as contiguous integer runs; an offset
// returned by allocate is a stable handle into buf for as long as the
// arena isn't reset past it.
//
// Offset 0 is reserved: the arena is seeded with a single 0 so that a
// clause whose watch-link slot sits at offset -1 relative to some base
// can still be read as "preceded by a zero" without a bounds check (see
// Solver.propagate).
type arena struct {
	buf  []int
	used int
}

func newArena(capacity int) *arena {
	if capacity < 1 {
		capacity = 1
	}
	a := &arena{buf: make([]int, capacity)}
	a.buf[0] = 0
	a.used = 1
	return a
}

// allocate reserves n contiguous slots and returns the offset of the
// first one. It panics if the arena's capacity is exhausted; arena
// exhaustion is an unrecoverable condition for the solver (SPEC_FULL.md
// §1, OutOfMemory), not a caller error to recover from.
func (a *arena) allocate(n int) int {
	if a.used+n > len(a.buf) {
		panic(fmt.Sprintf("sat: arena out of memory: requested %d slots, %d/%d used", n, a.used, len(a.buf)))
	}
	off := a.used
	a.used += n
	return off
}

// usedCount returns the number of slots currently in use.
func (a *arena) usedCount() int {
	return a.used
}

// resize sets the used-count back to u, virtually discarding everything
// allocated since. u must be <= the current used count; the discarded
// slots' contents are left untouched in buf until overwritten by a
// subsequent allocate.
func (a *arena) resize(u int) {
	a.used = u
}
