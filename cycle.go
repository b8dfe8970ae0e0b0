package looptab

// ---------------------------------------------------------------------------
// Cyclic index space: unbounded virtual indices over a finite content set
// ---------------------------------------------------------------------------

// Index reduces an unbounded virtual index into [0, length). It is total
// over all integers; negative virtual indices wrap from the end, so
// Index(-1, n) == n-1. length must be positive (enforced at construction).
func Index(virtual, length int) int {
	return ((virtual % length) + length) % length
}

// Nearest returns the virtual index congruent to target (mod length) that is
// closest to current. The result is never more than half the content length
// away; an exact half-length tie resolves in the positive direction.
func Nearest(current, target, length int) int {
	diff := Index(target-current, length)
	if diff*2 > length {
		diff -= length
	}
	return current + diff
}
