package looptab

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the strip, indicator, separator and the visible page window.
// Mid-gesture frames clip the straddled pages cell-exactly, so the page
// region slides instead of jumping.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	rows := make([]string, 0, m.headerRows()+m.pageHeight())
	blank := m.blankRow()
	for i := 0; i < m.cfg.TabTopPadding; i++ {
		rows = append(rows, blank)
	}
	rows = append(rows, m.tabRows()...)
	for i := 0; i < m.cfg.TabBottomPadding; i++ {
		rows = append(rows, blank)
	}
	indicator := m.indicatorRow()
	for i := 0; i < m.indicatorRows(); i++ {
		rows = append(rows, indicator)
	}
	if m.cfg.ShowSeparator {
		rows = append(rows, m.Styles.Separator.Render(strings.Repeat("─", m.width)))
	}
	rows = append(rows, m.pageRows()...)
	return strings.Join(rows, "\n")
}

// tabRows renders the label row, vertically centered when the label area is
// taller than one row.
func (m Model) tabRows() []string {
	rows := make([]string, m.cfg.TabHeight)
	blank := m.blankRow()
	for i := range rows {
		rows[i] = blank
	}
	rows[(m.cfg.TabHeight-1)/2] = m.labelRow()
	return rows
}

func (m Model) labelRow() string {
	slots := m.strip.Surface().Window(m.width, m.cfg.CacheExtent)
	if len(slots) == 0 {
		return m.blankRow()
	}
	var b strings.Builder
	for _, s := range slots {
		st := m.Styles.InactiveTab
		if s.Modulo == m.selected {
			st = m.Styles.ActiveTab
		}
		text := ansi.Truncate(m.tabText(s.Modulo), s.Width, "")
		b.WriteString(st.Width(s.Width).MaxWidth(s.Width).Align(lipgloss.Center).Render(text))
	}
	row := ansi.TruncateLeft(b.String(), -slots[0].X, "")
	row = ansi.Truncate(row, m.width, "")
	return m.padRow(row)
}

// indicatorRow paints the selection highlight at the interpolated position
// for the current fractional page.
func (m Model) indicatorRow() string {
	left, width := m.strip.Indicator(m.pager.Page())
	base := int(math.Round(m.strip.Surface().Offset()))
	start := int(math.Round(left)) - base
	end := start + int(math.Round(width))
	if start < 0 {
		start = 0
	}
	if end > m.width {
		end = m.width
	}
	if end <= start {
		return m.Styles.IndicatorTrack.Render(strings.Repeat(" ", m.width))
	}
	var b strings.Builder
	b.WriteString(m.Styles.IndicatorTrack.Render(strings.Repeat(" ", start)))
	b.WriteString(m.Styles.Indicator.Render(strings.Repeat(" ", end-start)))
	b.WriteString(m.Styles.IndicatorTrack.Render(strings.Repeat(" ", m.width-end)))
	return b.String()
}

// pageRows renders the visible page window. Each materialized page is built
// at full viewport size, then the composite is cropped to the viewport.
func (m Model) pageRows() []string {
	pageH := m.pageHeight()
	if pageH <= 0 {
		return nil
	}
	slots := m.pager.Window(m.cfg.CacheExtent)
	if len(slots) == 0 {
		blank := m.blankRow()
		rows := make([]string, pageH)
		for i := range rows {
			rows[i] = blank
		}
		return rows
	}
	lines := make([][]string, len(slots))
	for i, s := range slots {
		content := m.cfg.PageBuilder(m.width, pageH, s.Modulo, s.Modulo == m.selected)
		boxed := lipgloss.Place(m.width, pageH, lipgloss.Left, lipgloss.Top, content)
		lines[i] = strings.Split(boxed, "\n")
	}
	lead := -slots[0].X
	rows := make([]string, pageH)
	for r := 0; r < pageH; r++ {
		var b strings.Builder
		for i := range slots {
			if r < len(lines[i]) {
				b.WriteString(lines[i][r])
			}
		}
		row := ansi.TruncateLeft(b.String(), lead, "")
		row = ansi.Truncate(row, m.width, "")
		rows[r] = m.padRow(row)
	}
	return rows
}

func (m Model) blankRow() string {
	return m.Styles.Background.Render(strings.Repeat(" ", m.width))
}

// padRow fills a cropped row out to the viewport width with background.
func (m Model) padRow(row string) string {
	missing := m.width - ansi.StringWidth(row)
	if missing <= 0 {
		return row
	}
	return row + m.Styles.Background.Render(strings.Repeat(" ", missing))
}
