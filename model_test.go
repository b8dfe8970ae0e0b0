package looptab

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type events struct {
	tapped  []int
	changed []int
}

func testModel(t *testing.T, length int) (Model, *events) {
	t.Helper()
	ev := &events{}
	m, err := New(Config{
		Length: length,
		TabBuilder: func(index int, selected bool) string {
			return fmt.Sprintf("Tab%d", index)
		},
		PageBuilder: func(width, height, index int, selected bool) string {
			return fmt.Sprintf("page %d", index)
		},
		OnTabTap:      func(index int) { ev.tapped = append(ev.tapped, index) },
		OnPageChanged: func(index int) { ev.changed = append(ev.changed, index) },
		Width:         30,
		Height:        10,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, ev
}

// settle pumps animation frames until the model comes to rest.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if !m.anim.active {
			return m
		}
		m, _ = m.Update(FrameMsg{Seq: m.anim.seq, At: time.Now()})
	}
	t.Fatal("model never settled")
	return m
}

func TestTapScrollsAndNotifiesOnce(t *testing.T) {
	m, ev := testModel(t, 9)
	m, cmd := m.Tap(1)
	if cmd == nil {
		t.Fatal("Tap(1) returned no command")
	}
	m = settle(t, m)

	if got := m.Selected(); got != 1 {
		t.Fatalf("Selected() = %d, want 1", got)
	}
	if got := m.Page(); got != 1 {
		t.Fatalf("Page() = %v, want 1", got)
	}
	if len(ev.tapped) != 1 || ev.tapped[0] != 1 {
		t.Fatalf("tapped = %v, want [1]", ev.tapped)
	}
	if len(ev.changed) != 1 || ev.changed[0] != 1 {
		t.Fatalf("changed = %v, want [1]", ev.changed)
	}
}

func TestRepeatTapIsIdempotent(t *testing.T) {
	m, ev := testModel(t, 9)
	m, _ = m.Tap(1)
	m = settle(t, m)

	m, _ = m.Tap(1)
	if m.anim.active {
		t.Fatal("re-tap of the selected tab started a scroll")
	}
	if got := m.Page(); got != 1 {
		t.Fatalf("Page() = %v, want 1", got)
	}
	if len(ev.tapped) != 2 {
		t.Fatalf("tapped = %v, want two taps", ev.tapped)
	}
	if len(ev.changed) != 1 {
		t.Fatalf("changed = %v, want exactly one notification", ev.changed)
	}
}

func TestTapTakesShortestPath(t *testing.T) {
	m, ev := testModel(t, 3)
	m, _ = m.Tap(2)
	m = settle(t, m)

	// one page backward beats two forward
	if got := m.Page(); got != -1 {
		t.Fatalf("Page() = %v, want -1", got)
	}
	if got := m.Selected(); got != 2 {
		t.Fatalf("Selected() = %d, want 2", got)
	}
	if len(ev.changed) != 1 || ev.changed[0] != 2 {
		t.Fatalf("changed = %v, want [2]", ev.changed)
	}
}

func TestPrevPageWrapsBackward(t *testing.T) {
	m, ev := testModel(t, 9)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = settle(t, m)

	if got := m.Selected(); got != 8 {
		t.Fatalf("Selected() = %d, want 8", got)
	}
	if got := m.Page(); got != -1 {
		t.Fatalf("Page() = %v, want -1", got)
	}
	if len(ev.changed) != 1 || ev.changed[0] != 8 {
		t.Fatalf("changed = %v, want [8]", ev.changed)
	}
}

func TestNextPageAdvances(t *testing.T) {
	m, _ := testModel(t, 9)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = settle(t, m)
	if got := m.Selected(); got != 1 {
		t.Fatalf("Selected() = %d, want 1", got)
	}
}

func TestRetargetMidFlightNotifiesFinalOnly(t *testing.T) {
	m, ev := testModel(t, 9)
	m, _ = m.Tap(1)
	// a few frames in, change destination
	for i := 0; i < 3; i++ {
		m, _ = m.Update(FrameMsg{Seq: m.anim.seq, At: time.Now()})
	}
	m, _ = m.Tap(2)
	m = settle(t, m)

	if got := m.Selected(); got != 2 {
		t.Fatalf("Selected() = %d, want 2", got)
	}
	if len(ev.changed) != 1 || ev.changed[0] != 2 {
		t.Fatalf("changed = %v, want [2] only", ev.changed)
	}
}

func TestDragReleaseBeforeMidpointSettlesBack(t *testing.T) {
	m, ev := testModel(t, 9)
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 20, Y: 5})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionMotion, X: 14, Y: 5})
	if got := m.Page(); got != 0.2 {
		t.Fatalf("Page() mid-drag = %v, want 0.2", got)
	}
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: 14, Y: 5})
	m = settle(t, m)

	if got := m.Page(); got != 0 {
		t.Fatalf("Page() = %v, want 0", got)
	}
	if len(ev.changed) != 0 {
		t.Fatalf("changed = %v, want none for a settle-back", ev.changed)
	}
}

func TestDragReleasePastMidpointAdvances(t *testing.T) {
	m, ev := testModel(t, 9)
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 25, Y: 5})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionMotion, X: 5, Y: 5})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: 5, Y: 5})
	m = settle(t, m)

	if got := m.Selected(); got != 1 {
		t.Fatalf("Selected() = %d, want 1", got)
	}
	if len(ev.changed) != 1 || ev.changed[0] != 1 {
		t.Fatalf("changed = %v, want [1]", ev.changed)
	}
}

func TestDragTakesOverFromAnimation(t *testing.T) {
	m, _ := testModel(t, 9)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !m.anim.active {
		t.Fatal("no animation in flight")
	}
	stale := m.anim.seq

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 15, Y: 5})
	if m.anim.active {
		t.Fatal("press did not cancel the animation")
	}

	before := m.Page()
	m, _ = m.Update(FrameMsg{Seq: stale, At: time.Now()})
	if got := m.Page(); got != before {
		t.Fatalf("stale frame moved the page: %v -> %v", before, got)
	}
}

func TestWheelAdvancesPage(t *testing.T) {
	m, _ := testModel(t, 9)
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown, X: 0, Y: 0})
	m = settle(t, m)
	if got := m.Selected(); got != 1 {
		t.Fatalf("Selected() = %d, want 1", got)
	}
}

func TestTapOnSelectedTabViaMouse(t *testing.T) {
	m, ev := testModel(t, 3)
	// the selected tab is centered, so the viewport midpoint hits it
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 15, Y: 0})
	if len(ev.tapped) != 1 || ev.tapped[0] != 0 {
		t.Fatalf("tapped = %v, want [0]", ev.tapped)
	}
	if m.anim.active {
		t.Fatal("tapping the selected tab started a scroll")
	}
}

func TestSelectIsCongruent(t *testing.T) {
	m, _ := testModel(t, 3)
	m, _ = m.Select(-4) // congruent to 2
	m = settle(t, m)
	if got := m.Selected(); got != 2 {
		t.Fatalf("Selected() = %d, want 2", got)
	}
}

func TestResizePreservesFractionalPage(t *testing.T) {
	m, _ := testModel(t, 9)
	m.pager.SetPage(1.5)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	// explicit Width/Height pin the size, so force through resize directly
	if got := m.Page(); got != 1.5 {
		t.Fatalf("Page() after resize = %v, want 1.5", got)
	}
}

func TestNavIgnoredMidDrag(t *testing.T) {
	m, _ := testModel(t, 9)
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 20, Y: 5})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionMotion, X: 17, Y: 5})
	page := m.Page()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.anim.active {
		t.Fatal("key nav started an animation during a drag")
	}
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown, X: 0, Y: 0})
	if m.anim.active {
		t.Fatal("wheel nav started an animation during a drag")
	}
	if got := m.Page(); got != page {
		t.Fatalf("Page() = %v, want %v (unchanged mid-drag)", got, page)
	}

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: 17, Y: 5})
	m = settle(t, m)
	if got := m.Page(); got != 0 {
		t.Fatalf("Page() after release = %v, want 0", got)
	}
}
