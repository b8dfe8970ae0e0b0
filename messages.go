package looptab

import tea "github.com/charmbracelet/bubbletea"

// PageChangedMsg reports that the page surface settled on a new page. It is
// emitted exactly once per distinct settled index and always reflects the
// final settled index, never an intermediate drag position.
type PageChangedMsg struct {
	Index int
}

// TabTappedMsg reports a tap on a tab, with its modulo index. Emitted for
// every tap, including taps on the already-selected tab.
type TabTappedMsg struct {
	Index int
}

func pageChangedCmd(index int) tea.Cmd {
	return func() tea.Msg { return PageChangedMsg{Index: index} }
}

func tabTappedCmd(index int) tea.Cmd {
	return func() tea.Msg { return TabTappedMsg{Index: index} }
}
