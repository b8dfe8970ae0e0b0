package looptab

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// ---------------------------------------------------------------------------
// Programmatic scrolls: spring animation advanced by frame messages
// ---------------------------------------------------------------------------

const (
	animFPS         = 60
	settleTolerance = 0.05
)

// FrameMsg advances an in-flight programmatic scroll. Each frame carries the
// generation that scheduled it; frames from a cancelled generation are
// dropped, which is what makes gesture takeover immediate.
type FrameMsg struct {
	Seq int
	At  time.Time
}

// anim drives a scroll offset toward a target with spring physics, one
// FrameMsg at a time. Starting a new animation or cancelling bumps the
// generation so stale frames become no-ops: last writer wins, nothing is
// queued.
type anim struct {
	spring harmonica.Spring
	seq    int
	active bool
	pos    float64
	vel    float64
	target float64
}

func newAnim(spring harmonica.Spring) anim {
	return anim{spring: spring}
}

// start begins animating from from toward to and returns the command that
// schedules the first frame. Any previous animation is superseded.
func (a *anim) start(from, to float64) tea.Cmd {
	a.seq++
	a.active = true
	a.pos = from
	a.vel = 0
	a.target = to
	return a.frame()
}

// cancel invalidates in-flight frames. The offset stays wherever it is; the
// new owner of the gesture takes over from there.
func (a *anim) cancel() {
	a.seq++
	a.active = false
}

func (a *anim) frame() tea.Cmd {
	seq := a.seq
	return tea.Tick(time.Second/animFPS, func(t time.Time) tea.Msg {
		return FrameMsg{Seq: seq, At: t}
	})
}

// step consumes one frame. ok reports whether the frame belonged to the
// current generation; done reports arrival, with the position snapped
// exactly onto the target.
func (a *anim) step(msg FrameMsg) (pos float64, done, ok bool) {
	if !a.active || msg.Seq != a.seq {
		return 0, false, false
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < settleTolerance && math.Abs(a.vel) < settleTolerance {
		a.pos = a.target
		a.vel = 0
		a.active = false
		return a.pos, true, true
	}
	return a.pos, false, true
}

func defaultSpring() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(animFPS), 7.0, 1.0)
}
