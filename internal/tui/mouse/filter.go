package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MotionReceiver is implemented by models that sometimes want motion
// events. Motion outside those windows is dropped before it reaches
// the update loop.
type MotionReceiver interface {
	WantsMouseMotion() bool
}

// MotionFilter coalesces mouse motion at the program boundary so the
// drag controller sees at most one position per display refresh.
// Press, release, and wheel events pass through untouched.
type MotionFilter struct {
	throttle time.Duration
	lastAt   time.Time
	lastX    int
	lastY    int
}

// NewMotionFilter returns a filter throttled to one motion event per
// 16 ms, roughly one per frame at 60 Hz.
func NewMotionFilter() *MotionFilter {
	return &MotionFilter{
		throttle: 16 * time.Millisecond,
		lastX:    -1,
		lastY:    -1,
	}
}

// Filter is installed with tea.WithFilter.
func (f *MotionFilter) Filter(model tea.Model, msg tea.Msg) tea.Msg {
	if f == nil {
		return msg
	}
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return msg
	}
	if mouse.Action != tea.MouseActionMotion {
		return msg
	}
	recv, ok := model.(MotionReceiver)
	if !ok || !recv.WantsMouseMotion() {
		f.reset()
		return nil
	}
	if mouse.X == f.lastX && mouse.Y == f.lastY {
		return nil
	}
	now := time.Now()
	if !f.lastAt.IsZero() && now.Sub(f.lastAt) < f.throttle {
		return nil
	}
	f.lastAt = now
	f.lastX = mouse.X
	f.lastY = mouse.Y
	return msg
}

func (f *MotionFilter) reset() {
	f.lastAt = time.Time{}
	f.lastX = -1
	f.lastY = -1
}
