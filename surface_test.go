package looptab

import "testing"

func testSurface() *Surface {
	widths := []int{5, 7, 3}
	return NewSurface(len(widths), func(m int) int { return widths[m] })
}

func TestSurfaceAnchorIsStable(t *testing.T) {
	s := testSurface()
	if got := s.Leading(0); got != 0 {
		t.Fatalf("Leading(0) = %d, want 0", got)
	}
	s.SetOffset(12345.5)
	s.SetOffset(-9876.25)
	if got := s.Leading(0); got != 0 {
		t.Fatalf("Leading(0) after scrolling = %d, want 0", got)
	}
}

func TestSurfaceLeadingAcrossCycles(t *testing.T) {
	s := testSurface()
	cases := []struct{ v, want int }{
		{0, 0}, {1, 5}, {2, 12},
		{3, 15}, {4, 20},
		{-1, -3}, {-2, -10}, {-3, -15}, {-4, -18},
		{30, 150}, {-30, -150},
	}
	for _, c := range cases {
		if got := s.Leading(c.v); got != c.want {
			t.Fatalf("Leading(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestSurfaceExtentRepeats(t *testing.T) {
	s := testSurface()
	for _, v := range []int{-4, -1, 0, 2, 5, 31} {
		if got, want := s.Extent(v), s.Extent(Index(v, 3)); got != want {
			t.Fatalf("Extent(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestSurfaceIndexAt(t *testing.T) {
	s := testSurface()
	cases := []struct {
		pos  float64
		want int
	}{
		{0, 0}, {4.9, 0}, {5, 1}, {11.9, 1}, {12, 2}, {14.9, 2},
		{15, 3}, {20, 4},
		{-0.1, -1}, {-3, -1}, {-3.1, -2}, {-15, -3},
	}
	for _, c := range cases {
		if got := s.IndexAt(c.pos); got != c.want {
			t.Fatalf("IndexAt(%v) = %d, want %d", c.pos, got, c.want)
		}
	}
}

func TestSurfaceWindowCoversViewportOnly(t *testing.T) {
	s := testSurface()
	slots := s.Window(10, 0)
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if slots[0].Virtual != 0 || slots[0].X != 0 || slots[0].Width != 5 {
		t.Fatalf("slots[0] = %+v, want {0 0 0 5}", slots[0])
	}
	if slots[1].Virtual != 1 || slots[1].X != 5 || slots[1].Width != 7 {
		t.Fatalf("slots[1] = %+v, want {1 1 5 7}", slots[1])
	}
}

func TestSurfaceWindowCacheMargin(t *testing.T) {
	s := testSurface()
	slots := s.Window(10, 3)
	if len(slots) != 4 {
		t.Fatalf("len(slots) = %d, want 4", len(slots))
	}
	if slots[0].Virtual != -1 || slots[0].Modulo != 2 || slots[0].X != -3 {
		t.Fatalf("slots[0] = %+v, want virtual -1 modulo 2 at x -3", slots[0])
	}
	if slots[3].Virtual != 2 || slots[3].X != 12 {
		t.Fatalf("slots[3] = %+v, want virtual 2 at x 12", slots[3])
	}
}

func TestSurfaceWindowContiguous(t *testing.T) {
	s := testSurface()
	for _, off := range []float64{-40.5, -7, 0, 3.2, 17, 99.9} {
		s.SetOffset(off)
		slots := s.Window(12, 4)
		if len(slots) == 0 {
			t.Fatalf("offset %v: empty window", off)
		}
		for i := 1; i < len(slots); i++ {
			if slots[i].Virtual != slots[i-1].Virtual+1 {
				t.Fatalf("offset %v: virtual gap between %+v and %+v", off, slots[i-1], slots[i])
			}
			if slots[i].X != slots[i-1].X+slots[i-1].Width {
				t.Fatalf("offset %v: cell gap between %+v and %+v", off, slots[i-1], slots[i])
			}
		}
	}
}

func TestSurfaceZeroWidthItemsSkipped(t *testing.T) {
	widths := []int{4, 0, 6}
	s := NewSurface(3, func(m int) int { return widths[m] })
	for _, slot := range s.Window(20, 0) {
		if slot.Width == 0 {
			t.Fatalf("materialized zero-width slot %+v", slot)
		}
	}
}

func TestSurfaceReflowPicksUpExtentChanges(t *testing.T) {
	widths := []int{5, 7, 3}
	s := NewSurface(3, func(m int) int { return widths[m] })
	widths[1] = 20
	s.Reflow()
	if got := s.Cycle(); got != 28 {
		t.Fatalf("Cycle() = %d, want 28", got)
	}
	if got := s.Leading(2); got != 25 {
		t.Fatalf("Leading(2) = %d, want 25", got)
	}
}
