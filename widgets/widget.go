package widgets

import "github.com/charmbracelet/lipgloss"

// Widget is anything that can render itself into a cell box.
type Widget interface {
	Render(width, height int) string
}

// Pane is a bordered content box with a title. Selected panes get an accent
// border.
type Pane struct {
	Title    string
	Content  string
	Selected bool
}

func (p Pane) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Width(width - 2).
		Height(height - 2)
	if p.Selected {
		border = border.BorderForeground(lipgloss.Color("#f5c2e7"))
	}
	title := lipgloss.NewStyle().Bold(true).Render(p.Title)
	return border.Render(title + "\n" + p.Content)
}

// Fill is a solid block of one rune, useful as a placeholder page.
type Fill struct {
	Rune rune
}

func (f Fill) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	r := f.Rune
	if r == 0 {
		r = ' '
	}
	line := make([]rune, width)
	for i := range line {
		line[i] = r
	}
	out := make([]string, height)
	for i := range out {
		out[i] = string(line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
