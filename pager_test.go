package looptab

import "testing"

func testPager() *Pager {
	p := NewPager(5)
	p.SetWidth(10)
	return p
}

func TestPagerPageFraction(t *testing.T) {
	p := testPager()
	p.SetPage(2.3)
	if got := p.Page(); got != 2.3 {
		t.Fatalf("Page() = %v, want 2.3", got)
	}
	if got := p.Surface().Offset(); got != 23 {
		t.Fatalf("Offset() = %v, want 23", got)
	}
}

func TestPagerSnapTarget(t *testing.T) {
	p := testPager()
	cases := []struct {
		page float64
		want int
	}{
		{2.3, 2}, {2.6, 3}, {2.5, 3}, {-0.4, 0}, {-0.6, -1}, {7, 7},
	}
	for _, c := range cases {
		p.SetPage(c.page)
		if got := p.SnapTarget(); got != c.want {
			t.Fatalf("SnapTarget() at page %v = %d, want %d", c.page, got, c.want)
		}
	}
}

func TestPagerSettled(t *testing.T) {
	p := testPager()
	p.SetPage(2.3)
	if p.Settled() {
		t.Fatalf("Settled() at page 2.3, want false")
	}
	p.SetPage(-3)
	if !p.Settled() {
		t.Fatalf("not Settled() at page -3, want true")
	}
}

func TestPagerSetWidthPreservesPage(t *testing.T) {
	p := testPager()
	p.SetPage(1.5)
	p.SetWidth(20)
	if got := p.Page(); got != 1.5 {
		t.Fatalf("Page() after resize = %v, want 1.5", got)
	}
	if got := p.Surface().Offset(); got != 30 {
		t.Fatalf("Offset() after resize = %v, want 30", got)
	}
}

func TestPagerWindowStraddle(t *testing.T) {
	p := testPager()
	p.SetPage(1.5)
	slots := p.Window(0)
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if slots[0].Virtual != 1 || slots[0].X != -5 {
		t.Fatalf("slots[0] = %+v, want virtual 1 at x -5", slots[0])
	}
	if slots[1].Virtual != 2 || slots[1].X != 5 {
		t.Fatalf("slots[1] = %+v, want virtual 2 at x 5", slots[1])
	}
}

func TestPagerOffsetFor(t *testing.T) {
	p := testPager()
	if got := p.OffsetFor(-2); got != -20 {
		t.Fatalf("OffsetFor(-2) = %v, want -20", got)
	}
}
