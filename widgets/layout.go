package widgets

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// VSplit renders Top above Bottom, giving Top Fraction of the height. Both
// halves stay at least one row tall whenever the box allows it.
type VSplit struct {
	Top      Widget
	Bottom   Widget
	Fraction float64
}

func (s VSplit) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	topH := splitExtent(height, s.Fraction)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		box(s.Top.Render(width, topH), width, topH),
		box(s.Bottom.Render(width, height-topH), width, height-topH),
	)
}

// HSplit renders Left beside Right, giving Left Fraction of the width.
type HSplit struct {
	Left     Widget
	Right    Widget
	Fraction float64
}

func (s HSplit) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	leftW := splitExtent(width, s.Fraction)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		box(s.Left.Render(leftW, height), leftW, height),
		box(s.Right.Render(width-leftW, height), width-leftW, height),
	)
}

// splitExtent divides total at fraction. A fraction outside (0, 1) means an
// even split; the result leaves room for the second half when total >= 2.
func splitExtent(total int, fraction float64) int {
	if fraction <= 0 || fraction >= 1 {
		fraction = 0.5
	}
	first := int(math.Round(fraction * float64(total)))
	if total >= 2 {
		if first < 1 {
			first = 1
		}
		if first > total-1 {
			first = total - 1
		}
	}
	return first
}

// box pads or crops content to an exact cell box so joins stay rectangular.
func box(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).Height(height).
		MaxWidth(width).MaxHeight(height).
		Render(content)
}
