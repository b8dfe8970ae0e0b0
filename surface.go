package looptab

import (
	"math"
	"sort"
)

// ---------------------------------------------------------------------------
// Cyclic scrollable surface: unbounded offset over a finite repeating set
// ---------------------------------------------------------------------------

// Slot is one materialized item of a surface window. X is the item's leading
// edge in viewport-relative cells; it may be negative when the item straddles
// the viewport's left edge.
type Slot struct {
	Virtual int
	Modulo  int
	X       int
	Width   int
}

// Surface tracks a real-valued, unbounded scroll offset over an infinite
// two-directional sequence of items whose extents repeat with period length.
// The item at virtual index 0 keeps its leading edge at position 0 forever
// (the anchor); negative virtual indices extend to the left of it. The
// surface owns no animation and issues no I/O; it is position bookkeeping
// plus the window query.
type Surface struct {
	length int
	extent func(modulo int) int
	offset float64
	prefix []int // prefix[i] = cells from cycle start to item i; prefix[length] = full cycle
}

// NewSurface creates a surface over length items with per-item extents taken
// from extent. length must be >= 1 (validated by the owning widget).
func NewSurface(length int, extent func(modulo int) int) *Surface {
	s := &Surface{length: length, extent: extent}
	s.Reflow()
	return s
}

// Reflow re-reads every item extent and rebuilds the prefix sums. Call after
// anything that changes extents (resize, label changes).
func (s *Surface) Reflow() {
	prefix := make([]int, s.length+1)
	for i := 0; i < s.length; i++ {
		w := s.extent(i)
		if w < 0 {
			w = 0
		}
		prefix[i+1] = prefix[i] + w
	}
	s.prefix = prefix
}

// Length returns the finite content length N.
func (s *Surface) Length() int { return s.length }

// Offset returns the current scroll offset: the distance from the anchor to
// the viewport's leading edge. It is unconstrained in both directions.
func (s *Surface) Offset() float64 { return s.offset }

// SetOffset moves the viewport. No clamping: there are no extents to hit.
func (s *Surface) SetOffset(offset float64) { s.offset = offset }

// Shift moves the viewport by delta cells.
func (s *Surface) Shift(delta float64) { s.offset += delta }

// Cycle returns the total extent of one full pass over the content set.
func (s *Surface) Cycle() int { return s.prefix[s.length] }

// Leading returns the leading-edge position of the item at virtual index v,
// measured from the anchor. Exact for any integer, negative included.
func (s *Surface) Leading(v int) int {
	return floorDiv(v, s.length)*s.Cycle() + s.prefix[Index(v, s.length)]
}

// Extent returns the extent of the item at virtual index v.
func (s *Surface) Extent(v int) int {
	m := Index(v, s.length)
	return s.prefix[m+1] - s.prefix[m]
}

// IndexAt returns the virtual index of the item whose span contains pos.
func (s *Surface) IndexAt(pos float64) int {
	cycle := s.Cycle()
	if cycle <= 0 {
		return 0
	}
	c := math.Floor(pos / float64(cycle))
	rem := int(math.Floor(pos - c*float64(cycle)))
	if rem >= cycle {
		rem = cycle - 1
	}
	if rem < 0 {
		rem = 0
	}
	i := sort.SearchInts(s.prefix, rem+1) - 1
	if i < 0 {
		i = 0
	}
	if i >= s.length {
		i = s.length - 1
	}
	return int(c)*s.length + i
}

// Window materializes exactly the items whose cells overlap the viewport
// plus cache cells of margin on both sides. Items outside the padded window
// are never built; the enumeration runs over both directions around the
// anchor, each virtual index appearing at most once. Slots are contiguous
// and ordered by virtual index.
func (s *Surface) Window(viewport, cache int) []Slot {
	if viewport <= 0 || s.Cycle() <= 0 {
		return nil
	}
	base := int(math.Round(s.offset))
	left := base - cache
	right := base + viewport + cache
	v := s.IndexAt(float64(left))
	slots := make([]Slot, 0, s.length+2)
	for lead := s.Leading(v); lead < right; v, lead = v+1, s.Leading(v+1) {
		w := s.Extent(v)
		if w <= 0 || lead+w <= left {
			continue
		}
		slots = append(slots, Slot{Virtual: v, Modulo: Index(v, s.length), X: lead - base, Width: w})
	}
	return slots
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
