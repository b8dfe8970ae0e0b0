package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"looptab"
	"looptab/internal/config"
	"looptab/widgets"
)

// ---------------------------------------------------------------------------
// Demo application model
// ---------------------------------------------------------------------------

var (
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")).
			Background(lipgloss.Color("#181825"))
	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cdd6f4")).
			Background(lipgloss.Color("#181825")).
			Bold(true)
)

type app struct {
	view   looptab.Model
	finder finder
	tabs   []string
	logger zerolog.Logger
	width  int
	height int
	status string
}

func newApp(cfg config.Config, logger zerolog.Logger) (*app, error) {
	tabs := cfg.Tabs
	view, err := looptab.New(looptab.Config{
		Length: len(tabs),
		TabBuilder: func(index int, selected bool) string {
			return tabs[index]
		},
		PageBuilder:           pageBuilder(tabs),
		ShowSeparator:         cfg.UI.ShowSeparator,
		TabTopPadding:         cfg.UI.TabTopPadding,
		TabBottomPadding:      cfg.UI.TabBottomPadding,
		ForceFixedTabWidth:    cfg.UI.ForceFixedTabWidth,
		FixedTabWidthFraction: cfg.UI.FixedTabWidthFraction,
		BackgroundColor:       lipgloss.Color(cfg.UI.BackgroundColor),
		IndicatorColor:        lipgloss.Color(cfg.UI.IndicatorColor),
	})
	if err != nil {
		return nil, err
	}
	return &app{
		view:   view,
		finder: newFinder(tabs),
		tabs:   tabs,
		logger: logger,
		status: "ready",
	}, nil
}

// pageBuilder renders a demo page: a titled pane over a texture fill, so
// horizontal clipping during drags is easy to eyeball.
func pageBuilder(tabs []string) func(width, height, index int, selected bool) string {
	textures := []rune{'░', '▒', '·', '╳'}
	return func(width, height, index int, selected bool) string {
		body := widgets.VSplit{
			Top: widgets.Pane{
				Title:    tabs[index],
				Content:  fmt.Sprintf("page %d of %d", index+1, len(tabs)),
				Selected: selected,
			},
			Bottom:   widgets.Fill{Rune: textures[index%len(textures)]},
			Fraction: 0.66,
		}
		return body.Render(width, height)
	}
}

func (a *app) Init() tea.Cmd { return a.view.Init() }

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// The footer keeps one row for itself.
		msg.Height--
		var cmd tea.Cmd
		a.view, cmd = a.view.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.finder.open {
			var cmd tea.Cmd
			a.finder, cmd = a.finder.update(msg)
			if idx, ok := a.finder.picked(); ok {
				a.finder.close()
				var tap tea.Cmd
				a.view, tap = a.view.Tap(idx)
				return a, tea.Batch(cmd, tap)
			}
			return a, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "/":
			a.finder.show()
			return a, nil
		}

	case looptab.PageChangedMsg:
		a.status = fmt.Sprintf("page: %s", a.tabs[msg.Index])
		a.logger.Info().Int("index", msg.Index).Str("tab", a.tabs[msg.Index]).Msg("page changed")

	case looptab.TabTappedMsg:
		a.logger.Info().Int("index", msg.Index).Str("tab", a.tabs[msg.Index]).Msg("tab tapped")
	}

	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

func (a *app) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	body := a.view.View()
	if a.finder.open {
		body = a.finder.overlay(body, a.width, a.height-1)
	}
	return body + "\n" + a.footer()
}

func (a *app) footer() string {
	keys := footerKeyStyle.Render("←/→") + footerStyle.Render(" switch  ") +
		footerKeyStyle.Render("/") + footerStyle.Render(" find  ") +
		footerKeyStyle.Render("q") + footerStyle.Render(" quit")
	left := footerStyle.Render(" " + a.status + "  ")
	line := left + keys
	if pad := a.width - ansi.StringWidth(line); pad > 0 {
		line += footerStyle.Render(strings.Repeat(" ", pad))
	}
	return ansi.Truncate(line, a.width, "")
}
