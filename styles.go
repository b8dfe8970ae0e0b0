package looptab

import "github.com/charmbracelet/lipgloss"

// Styles is the widget's lipgloss style table. Zero value means
// DefaultStyles; the config's BackgroundColor and IndicatorColor overrides
// are applied on top at construction.
type Styles struct {
	ActiveTab      lipgloss.Style
	InactiveTab    lipgloss.Style
	Indicator      lipgloss.Style
	IndicatorTrack lipgloss.Style
	Separator      lipgloss.Style
	Background     lipgloss.Style
}

// DefaultStyles returns the stock look.
func DefaultStyles() Styles {
	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorTabOff),
		Indicator: lipgloss.NewStyle().
			Background(colorAccent),
		IndicatorTrack: lipgloss.NewStyle().
			Background(colorMantle),
		Separator: lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle),
		Background: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle),
	}
}
