package dock

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrDragActive   = errors.New("dock: drag already active")
	ErrStaleSession = errors.New("dock: stale drag session")
	ErrPanelPinned  = errors.New("dock: panel is pinned")
)

// State is the drag machine's externally visible state. The
// commit/revert phase runs synchronously inside End and Cancel, so
// callers only ever observe Idle or Dragging.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Session is one in-flight panel drag. The ID guards against stale
// pointer events: updates carrying any other ID are rejected with
// ErrStaleSession.
type Session struct {
	ID      string
	PanelID string
	Origin  Point
	Current Point
	Zone    Zone

	PriorPosition Position
	PriorFrac     float64
	PriorFloat    Rect
}

// Result reports how a drag finished.
type Result struct {
	Session   Session
	Committed bool
	Position  Position
}

// Controller sequences panel drags over a store. At most one session
// is active at a time. Like the store, the controller is confined to
// the update loop goroutine.
type Controller struct {
	store     *Store
	vp        Viewport
	threshold int
	state     State
	session   Session
}

func NewController(store *Store, threshold int) *Controller {
	if threshold < 0 {
		threshold = 0
	}
	return &Controller{store: store, threshold: threshold}
}

// SetViewport updates the drag surface extent. A resize mid-drag
// re-resolves the zone on the next pointer event.
func (c *Controller) SetViewport(vp Viewport) {
	c.vp = vp
}

func (c *Controller) Viewport() Viewport {
	return c.vp
}

func (c *Controller) SetThreshold(threshold int) {
	if threshold < 0 {
		threshold = 0
	}
	c.threshold = threshold
}

func (c *Controller) Threshold() int {
	return c.threshold
}

func (c *Controller) State() State {
	return c.state
}

// Active returns the current session while a drag is in flight.
func (c *Controller) Active() (Session, bool) {
	if c.state != StateDragging {
		return Session{}, false
	}
	return c.session, true
}

// Start begins a drag for the panel under the pointer. A second start
// while a session is active fails with ErrDragActive and leaves the
// first session untouched. Floating panels raise to the top of the
// stacking order.
func (c *Controller) Start(panelID string, at Point) (Session, error) {
	if c.state == StateDragging {
		return Session{}, ErrDragActive
	}
	p, ok := c.store.Get(panelID)
	if !ok {
		return Session{}, ErrPanelNotFound
	}
	if p.Pinned {
		return Session{}, ErrPanelPinned
	}
	sess := Session{
		ID:            uuid.NewString(),
		PanelID:       p.ID,
		Origin:        at,
		Current:       at,
		Zone:          ResolveZone(at, c.vp, c.threshold),
		PriorPosition: p.Position,
		PriorFrac:     p.Frac,
		PriorFloat:    p.Float,
	}
	if p.Position == PositionFloat {
		_ = c.store.Raise(p.ID)
	}
	c.state = StateDragging
	c.session = sess
	return sess, nil
}

// Update re-resolves the zone for a pointer move. The store is not
// mutated while dragging; the session is preview state only.
func (c *Controller) Update(sessionID string, at Point) (Session, error) {
	if c.state != StateDragging || sessionID != c.session.ID {
		return Session{}, ErrStaleSession
	}
	c.session.Current = at
	c.session.Zone = ResolveZone(at, c.vp, c.threshold)
	return c.session, nil
}

// End finishes the drag. A drop inside an edge band commits the panel
// to that side; a drop outside every band floats the panel centered
// on the pointer, clamped into the viewport.
func (c *Controller) End(sessionID string, at Point) (Result, error) {
	if c.state != StateDragging || sessionID != c.session.ID {
		return Result{}, ErrStaleSession
	}
	sess := c.session
	sess.Current = at
	sess.Zone = ResolveZone(at, c.vp, c.threshold)
	c.state = StateIdle
	c.session = Session{}

	if pos, ok := ZonePosition(sess.Zone); ok {
		if err := c.store.Commit(sess.PanelID, pos); err != nil {
			return Result{}, err
		}
		return Result{Session: sess, Committed: true, Position: pos}, nil
	}
	frame := c.FloatPreview(sess, at)
	if err := c.store.Commit(sess.PanelID, PositionFloat); err != nil {
		return Result{}, err
	}
	if err := c.store.Resize(sess.PanelID, Size{Frame: frame}); err != nil {
		return Result{}, err
	}
	return Result{Session: sess, Committed: false, Position: PositionFloat}, nil
}

// Cancel aborts the active drag and restores the panel's prior
// placement exactly. Canceling when idle or with a stale ID is a
// no-op, so a cancel arriving after End is harmless.
func (c *Controller) Cancel(sessionID string) error {
	if c.state != StateDragging || sessionID != c.session.ID {
		return nil
	}
	sess := c.session
	c.state = StateIdle
	c.session = Session{}

	if sess.PriorPosition == PositionFloat {
		if err := c.store.Commit(sess.PanelID, PositionFloat); err != nil {
			return err
		}
		if sess.PriorFloat.Empty() {
			return nil
		}
		return c.store.Resize(sess.PanelID, Size{Frame: sess.PriorFloat})
	}
	if err := c.store.Commit(sess.PanelID, sess.PriorPosition); err != nil {
		return err
	}
	if sess.PriorFrac <= 0 {
		return nil
	}
	return c.store.Resize(sess.PanelID, Size{Frac: sess.PriorFrac})
}

// FloatPreview returns the frame the panel would get if the drag
// ended at the pointer outside every edge band. Overlay rendering
// uses the same math so the preview matches the drop exactly.
func (c *Controller) FloatPreview(sess Session, at Point) Rect {
	frame := sess.PriorFloat
	if frame.Empty() {
		if p, ok := c.store.Get(sess.PanelID); ok && !p.LastFloat.Empty() {
			frame = p.LastFloat
		}
	}
	if frame.Empty() {
		frame = DefaultFloatRect(c.vp)
	}
	frame.X = at.X - frame.W/2
	frame.Y = at.Y - frame.H/2
	if c.vp.Width > 0 {
		frame.X = clampInt(frame.X, 0, maxInt(c.vp.Width-frame.W, 0))
	}
	if c.vp.Height > 0 {
		frame.Y = clampInt(frame.Y, 0, maxInt(c.vp.Height-frame.H, 0))
	}
	return frame
}
