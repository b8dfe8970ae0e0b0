package looptab

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the infinite scroll tab view. Hosts embed it in their own
// bubbletea model and forward messages to Update. All state transitions run
// on the host's event loop; the page position is the single source of truth
// and the strip, indicator and selection are derived from it.
type Model struct {
	// Styles is seeded with DefaultStyles plus the config color overrides.
	// Assign to it after New for a fully custom look.
	Styles Styles

	// KeyMap holds the active key bindings.
	KeyMap KeyMap

	cfg   Config
	strip *Strip
	pager *Pager
	anim  anim

	width  int
	height int
	ready  bool

	selected int // committed modulo index; what builders see as selected
	notified int // last index delivered through the page-changed path

	dragging    bool
	dragFromX   int
	dragFromOff float64
}

// New validates the configuration and builds the widget. Invalid
// configurations fail here, before any render attempt.
func New(cfg Config) (Model, error) {
	if err := cfg.validate(); err != nil {
		return Model{}, err
	}
	cfg.applyDefaults()

	m := Model{
		Styles: DefaultStyles(),
		KeyMap: cfg.KeyMap,
		cfg:    cfg,
		strip:  NewStrip(cfg.Length, cfg.TabHorizontalPadding, cfg.ForceFixedTabWidth, cfg.FixedTabWidthFraction),
		pager:  NewPager(cfg.Length),
		anim:   newAnim(cfg.Spring),
	}
	if cfg.BackgroundColor != "" {
		m.Styles.Background = m.Styles.Background.Background(cfg.BackgroundColor)
		m.Styles.InactiveTab = m.Styles.InactiveTab.Background(cfg.BackgroundColor)
		m.Styles.IndicatorTrack = m.Styles.IndicatorTrack.Background(cfg.BackgroundColor)
		m.Styles.Separator = m.Styles.Separator.Background(cfg.BackgroundColor)
	}
	if cfg.IndicatorColor != "" {
		m.Styles.Indicator = m.Styles.Indicator.Background(cfg.IndicatorColor)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		m.resize(cfg.Width, cfg.Height)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Selected returns the committed selection as a modulo index.
func (m Model) Selected() int { return m.selected }

// Page returns the fractional page position.
func (m Model) Page() float64 { return m.pager.Page() }

// Length returns the finite content length.
func (m Model) Length() int { return m.cfg.Length }

// Settled reports whether the page surface is at rest on an integral page
// with no gesture or animation in flight.
func (m Model) Settled() bool {
	return !m.anim.active && !m.dragging && m.pager.Settled()
}

// Update consumes host messages: viewport size, keys, mouse and animation
// frames. It implements the synchronization protocol between the two
// surfaces.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		if m.cfg.Width > 0 {
			w = m.cfg.Width
		}
		if m.cfg.Height > 0 {
			h = m.cfg.Height
		}
		m.resize(w, h)
		return m, nil

	case tea.KeyMsg:
		// an active drag owns the offset; nav waits for release
		if !m.ready || m.dragging {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.NextPage):
			return m.animateTo(m.currentVirtual() + 1)
		case key.Matches(msg, m.KeyMap.PrevPage):
			return m.animateTo(m.currentVirtual() - 1)
		}

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case FrameMsg:
		pos, done, ok := m.anim.step(msg)
		if !ok {
			return m, nil
		}
		m.pager.Surface().SetOffset(pos)
		m.syncStrip()
		if done {
			return m.commit()
		}
		return m, m.anim.frame()
	}
	return m, nil
}

// Select animates the page surface to the tab congruent to index, choosing
// the congruent virtual page nearest the current position so the surface
// never travels more than half the content length. Selecting the current
// selection while settled is a no-op.
func (m Model) Select(index int) (Model, tea.Cmd) {
	index = Index(index, m.cfg.Length)
	if index == m.selected && m.Settled() {
		return m, nil
	}
	return m.animateTo(Nearest(m.currentVirtual(), index, m.cfg.Length))
}

// Tap is the tab-tap entry point: it fires the tap notification, then
// behaves like Select. Repeated taps on the already-selected tab notify but
// do not scroll.
func (m Model) Tap(index int) (Model, tea.Cmd) {
	index = Index(index, m.cfg.Length)
	if m.cfg.OnTabTap != nil {
		m.cfg.OnTabTap(index)
	}
	cmds := []tea.Cmd{tabTappedCmd(index)}
	var cmd tea.Cmd
	m, cmd = m.Select(index)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	switch {
	case msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight):
		if m.dragging {
			return m, nil
		}
		return m.animateTo(m.currentVirtual() + 1)

	case msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft):
		if m.dragging {
			return m, nil
		}
		return m.animateTo(m.currentVirtual() - 1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.inTabArea(msg.Y) {
			if v, ok := m.strip.HitTest(msg.X); ok {
				return m.Tap(Index(v, m.cfg.Length))
			}
			return m, nil
		}
		// Gesture takeover: the drag owns the position from here on and
		// any in-flight programmatic scroll dies immediately.
		m.anim.cancel()
		m.dragging = true
		m.dragFromX = msg.X
		m.dragFromOff = m.pager.Surface().Offset()
		return m, nil

	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.pager.Surface().SetOffset(m.dragFromOff - float64(msg.X-m.dragFromX))
		m.syncStrip()
		return m, nil

	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		return m.animateTo(m.pager.SnapTarget())
	}
	return m, nil
}

// animateTo starts a programmatic scroll to virtual page v. Starting from
// the target position settles immediately instead of scheduling frames.
func (m Model) animateTo(v int) (Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	from := m.pager.Surface().Offset()
	to := m.pager.OffsetFor(v)
	if from == to {
		m.anim.cancel()
		return m.commit()
	}
	return m, m.anim.start(from, to)
}

// commit records a settle. The page-changed notification fires exactly once
// per distinct settled index and always carries the final settled index.
func (m Model) commit() (Model, tea.Cmd) {
	idx := Index(m.currentVirtual(), m.cfg.Length)
	if idx != m.selected {
		m.selected = idx
		m.remeasure()
	}
	if idx == m.notified {
		return m, nil
	}
	m.notified = idx
	if m.cfg.OnPageChanged != nil {
		m.cfg.OnPageChanged(idx)
	}
	return m, pageChangedCmd(idx)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.ready = w > 0 && h > 0
	m.pager.SetWidth(w)
	m.remeasure()
}

// remeasure re-reads tab widths (labels can change with selection) and
// re-centers the strip.
func (m *Model) remeasure() {
	m.strip.Measure(m.tabText, m.width)
	m.syncStrip()
}

// tabText is the measured cell content of a tab: label plus overlay.
func (m *Model) tabText(modulo int) string {
	text := m.cfg.TabBuilder(modulo, modulo == m.selected)
	if m.cfg.TabOverlayBuilder != nil {
		text += m.cfg.TabOverlayBuilder(modulo)
	}
	return text
}

// syncStrip translates the strip so the fractionally selected tab sits on
// the viewport midpoint.
func (m *Model) syncStrip() {
	if m.width <= 0 {
		return
	}
	m.strip.Surface().SetOffset(m.strip.CenterOffsetAt(m.pager.Page()))
}

func (m Model) currentVirtual() int {
	return int(math.Round(m.pager.Page()))
}

func (m Model) indicatorRows() int {
	return int(math.Round(m.cfg.IndicatorHeight))
}

// tabAreaRows is the tappable strip height: paddings, labels, indicator.
func (m Model) tabAreaRows() int {
	return m.cfg.TabTopPadding + m.cfg.TabHeight + m.cfg.TabBottomPadding + m.indicatorRows()
}

func (m Model) headerRows() int {
	rows := m.tabAreaRows()
	if m.cfg.ShowSeparator {
		rows++
	}
	return rows
}

func (m Model) pageHeight() int {
	h := m.height - m.headerRows()
	if h < 0 {
		h = 0
	}
	return h
}

func (m Model) inTabArea(y int) bool {
	return y >= 0 && y < m.tabAreaRows()
}
