package looptab

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Tab strip: label layout, centering offsets, indicator geometry, hit tests
// ---------------------------------------------------------------------------

// Strip lays tab labels out on a cyclic surface and answers geometry
// questions about them. All positions come from exact prefix sums over the
// measured widths, so non-uniform labels center correctly.
type Strip struct {
	surface  *Surface
	widths   []int
	hpad     int
	fixed    bool
	fraction float64
	viewport int
}

// NewStrip creates a strip over length tabs. In fixed mode every tab is
// fraction of the viewport wide; otherwise tabs take their natural label
// width plus hpad cells of padding on each side.
func NewStrip(length, hpad int, fixed bool, fraction float64) *Strip {
	t := &Strip{
		widths:   make([]int, length),
		hpad:     hpad,
		fixed:    fixed,
		fraction: fraction,
	}
	t.surface = NewSurface(length, func(m int) int { return t.widths[m] })
	return t
}

// Measure recomputes every tab extent for the given viewport width. Widths
// are content-driven in natural mode; selection styling (bold, colors) never
// changes cell width, but label text may, so callers re-measure on selection
// changes and on resize.
func (t *Strip) Measure(label func(modulo int) string, viewport int) {
	t.viewport = viewport
	for m := range t.widths {
		if t.fixed {
			t.widths[m] = int(math.Round(t.fraction * float64(viewport)))
		} else {
			t.widths[m] = lipgloss.Width(label(m)) + 2*t.hpad
		}
	}
	t.surface.Reflow()
}

// Surface exposes the strip's scroll surface.
func (t *Strip) Surface() *Surface { return t.surface }

// Viewport returns the width the strip was last measured for.
func (t *Strip) Viewport() int { return t.viewport }

// CenterOffset returns the offset that puts tab v's midpoint on the
// viewport's midpoint.
func (t *Strip) CenterOffset(v int) float64 {
	return float64(t.surface.Leading(v)) + float64(t.surface.Extent(v))/2 - float64(t.viewport)/2
}

// CenterOffsetAt interpolates CenterOffset between the two tabs a fractional
// position straddles, so the strip tracks an in-flight page drag smoothly.
func (t *Strip) CenterOffsetAt(f float64) float64 {
	k := int(math.Floor(f))
	return lerp(t.CenterOffset(k), t.CenterOffset(k+1), f-float64(k))
}

// Indicator returns the left edge and width of the selection indicator for
// fractional position f, in anchor coordinates. At integral f the geometry
// equals the selected tab's own bounds; between tabs k and k+1 both values
// interpolate linearly with the fractional part.
func (t *Strip) Indicator(f float64) (left, width float64) {
	k := int(math.Floor(f))
	frac := f - float64(k)
	l0, w0 := float64(t.surface.Leading(k)), float64(t.surface.Extent(k))
	l1, w1 := float64(t.surface.Leading(k+1)), float64(t.surface.Extent(k+1))
	return lerp(l0, l1, frac), lerp(w0, w1, frac)
}

// HitTest maps a viewport column to the virtual index of the tab under it.
func (t *Strip) HitTest(x int) (int, bool) {
	if x < 0 || x >= t.viewport || t.surface.Cycle() <= 0 {
		return 0, false
	}
	return t.surface.IndexAt(t.surface.Offset() + float64(x)), true
}

func lerp(a, b, f float64) float64 { return a + (b-a)*f }
