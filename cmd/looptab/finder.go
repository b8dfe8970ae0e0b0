package main

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// Fuzzy tab finder: "/" overlay, ranked by edit distance
// ---------------------------------------------------------------------------

var (
	finderBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f5c2e7")).
			Padding(0, 1)
	finderQueryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	finderItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	finderActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c2e7")).Bold(true)
)

type match struct {
	index int
	label string
	dist  int
}

// finder is the "/" overlay: type a query, tabs re-rank by levenshtein
// distance, enter taps the highlighted one.
type finder struct {
	open    bool
	tabs    []string
	query   string
	matches []match
	cursor  int
	choice  int
	chosen  bool
}

func newFinder(tabs []string) finder {
	return finder{tabs: tabs}
}

func (f *finder) show() {
	f.open = true
	f.query = ""
	f.cursor = 0
	f.chosen = false
	f.rank()
}

func (f *finder) close() {
	f.open = false
	f.chosen = false
}

// picked returns the chosen tab index once, after enter.
func (f finder) picked() (int, bool) {
	return f.choice, f.chosen
}

func (f finder) update(msg tea.KeyMsg) (finder, tea.Cmd) {
	switch msg.String() {
	case "esc":
		f.close()
	case "enter":
		if len(f.matches) > 0 {
			f.choice = f.matches[f.cursor].index
			f.chosen = true
		}
	case "up", "ctrl+k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "ctrl+j":
		if f.cursor < len(f.matches)-1 {
			f.cursor++
		}
	case "backspace":
		if f.query != "" {
			_, size := utf8.DecodeLastRuneInString(f.query)
			f.query = f.query[:len(f.query)-size]
			f.rank()
		}
	default:
		if msg.Type == tea.KeyRunes {
			f.query += string(msg.Runes)
			f.rank()
		}
	}
	return f, nil
}

// rank orders every tab by edit distance to the query; a substring hit beats
// pure distance so prefixes of long labels rank first.
func (f *finder) rank() {
	q := strings.ToLower(f.query)
	f.matches = f.matches[:0]
	for i, label := range f.tabs {
		l := strings.ToLower(label)
		dist := levenshtein.ComputeDistance(q, l)
		if q != "" && strings.Contains(l, q) {
			dist = 0
		}
		f.matches = append(f.matches, match{index: i, label: label, dist: dist})
	}
	sort.SliceStable(f.matches, func(a, b int) bool {
		return f.matches[a].dist < f.matches[b].dist
	})
	if f.cursor >= len(f.matches) {
		f.cursor = 0
	}
}

// overlay composites the finder box onto the center of the given frame,
// leaving the rest of the frame visible around it.
func (f finder) overlay(frame string, width, height int) string {
	var b strings.Builder
	b.WriteString(finderQueryStyle.Render("find: " + f.query + "█"))
	shown := f.matches
	if len(shown) > 8 {
		shown = shown[:8]
	}
	for i, m := range shown {
		b.WriteString("\n")
		if i == f.cursor {
			b.WriteString(finderActiveStyle.Render("> " + m.label))
		} else {
			b.WriteString(finderItemStyle.Render("  " + m.label))
		}
	}
	box := finderBoxStyle.Render(b.String())
	boxLines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)
	x := max(0, (width-boxW)/2)
	y := max(0, (height-len(boxLines))/2)

	lines := strings.Split(frame, "\n")
	for i, bl := range boxLines {
		r := y + i
		if r >= len(lines) {
			break
		}
		left := ansi.Truncate(lines[r], x, "")
		right := ansi.TruncateLeft(lines[r], x+boxW, "")
		lines[r] = left + bl + right
	}
	return strings.Join(lines, "\n")
}
