package looptab

import "math"

// ---------------------------------------------------------------------------
// Page surface: one full viewport of extent per item, snap-to-page settling
// ---------------------------------------------------------------------------

// Pager is the page surface: a cyclic surface where every item is exactly
// one viewport wide, so integral offsets are settled pages and the fractional
// page position is offset divided by the page extent.
type Pager struct {
	surface *Surface
	width   int
}

// NewPager creates a pager over length pages. Width is zero until the first
// resize.
func NewPager(length int) *Pager {
	p := &Pager{}
	p.surface = NewSurface(length, func(int) int { return p.width })
	return p
}

// Surface exposes the pager's scroll surface.
func (p *Pager) Surface() *Surface { return p.surface }

// Width returns the current page extent in cells.
func (p *Pager) Width() int { return p.width }

// SetWidth resizes pages, preserving the fractional page position so a
// resize mid-scroll does not teleport the content.
func (p *Pager) SetWidth(w int) {
	page := p.Page()
	p.width = w
	p.surface.Reflow()
	p.surface.SetOffset(page * float64(w))
}

// Page returns the fractional page position.
func (p *Pager) Page() float64 {
	if p.width <= 0 {
		return 0
	}
	return p.surface.Offset() / float64(p.width)
}

// SetPage positions the surface exactly on fractional page f.
func (p *Pager) SetPage(f float64) {
	p.surface.SetOffset(f * float64(p.width))
}

// OffsetFor returns the settled offset for virtual page v.
func (p *Pager) OffsetFor(v int) float64 {
	return float64(v) * float64(p.width)
}

// SnapTarget returns the integral page a released drag settles on: the
// nearest page, so releasing before the midpoint returns to where the drag
// began.
func (p *Pager) SnapTarget() int {
	return int(math.Round(p.Page()))
}

// Settled reports whether the surface is at rest on an integral page.
func (p *Pager) Settled() bool {
	if p.width <= 0 {
		return true
	}
	return math.Abs(p.Page()-math.Round(p.Page())) < 1e-9
}

// Window materializes the pages overlapping the viewport plus the cache
// margin.
func (p *Pager) Window(cache int) []Slot {
	return p.surface.Window(p.width, cache)
}
