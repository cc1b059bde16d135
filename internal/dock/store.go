package dock

import (
	"errors"
	"fmt"
	"sort"
)

var ErrPanelNotFound = errors.New("dock: panel not found")

// EventKind tags a store mutation.
type EventKind int

const (
	EventCommit EventKind = iota
	EventResize
	EventPin
	EventRaise
	EventRestore
)

func (k EventKind) String() string {
	switch k {
	case EventCommit:
		return "commit"
	case EventResize:
		return "resize"
	case EventPin:
		return "pin"
	case EventRaise:
		return "raise"
	case EventRestore:
		return "restore"
	default:
		return "unknown"
	}
}

// Event describes a single store mutation. Restore events cover the
// whole panel set and carry an empty PanelID.
type Event struct {
	Kind    EventKind
	PanelID string
	Panel   Panel
}

// Size carries a resize request. Docked panels read Frac, floating
// panels read Frame; the field for the other mode is ignored.
type Size struct {
	Frac  float64
	Frame Rect
}

// Layout is a point-in-time copy of every panel, sorted by ID.
type Layout struct {
	Panels []Panel
}

// Store holds panel layout state and notifies subscribers
// synchronously on every mutation. It is confined to the update loop
// goroutine; methods must not be called concurrently.
type Store struct {
	panels  map[string]Panel
	subs    []subscription
	nextSub int
	nextZ   int
}

type subscription struct {
	id int
	fn func(Event)
}

// NewStore seeds the store. Duplicate IDs keep the later panel;
// floating panels get ascending stacking order in input order.
func NewStore(panels ...Panel) *Store {
	s := &Store{panels: make(map[string]Panel, len(panels))}
	for _, p := range panels {
		norm := s.normalize(p)
		if norm.ID == "" {
			continue
		}
		s.panels[norm.ID] = norm
	}
	return s
}

func (s *Store) normalize(p Panel) Panel {
	p.ID = SanitizePanelID(p.ID)
	if p.Position == PositionFloat {
		if p.Float.Empty() {
			p.Float = DefaultFloatRect(Viewport{})
		}
		if p.LastFloat.Empty() {
			p.LastFloat = p.Float
		}
		if p.Z <= 0 {
			s.nextZ++
			p.Z = s.nextZ
		} else if p.Z > s.nextZ {
			s.nextZ = p.Z
		}
	} else {
		if p.Frac <= 0 {
			p.Frac = DefaultDockFraction(p.Position)
		}
		p.Frac = clampFraction(p.Frac)
	}
	return p
}

// Get returns a copy of the panel.
func (s *Store) Get(id string) (Panel, bool) {
	p, ok := s.panels[id]
	return p, ok
}

// Panels returns every panel sorted by ID.
func (s *Store) Panels() []Panel {
	out := make([]Panel, 0, len(s.panels))
	for _, p := range s.panels {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Floating returns floating panels sorted by stacking order, lowest
// first.
func (s *Store) Floating() []Panel {
	out := make([]Panel, 0, len(s.panels))
	for _, p := range s.panels {
		if p.Position == PositionFloat {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Docked returns the panel docked at pos, if any. At most one panel
// occupies a side; a commit displaces the previous occupant to float.
func (s *Store) Docked(pos Position) (Panel, bool) {
	for _, p := range s.panels {
		if p.Position == pos && pos.Docked() {
			return p, true
		}
	}
	return Panel{}, false
}

// Commit moves a panel to a new position. Docking assigns the default
// axis fraction when the panel has none; committing to float restores
// the last floating frame. Subscribers are notified even when the
// position did not change.
func (s *Store) Commit(id string, pos Position) error {
	p, ok := s.panels[id]
	if !ok {
		return ErrPanelNotFound
	}
	if !pos.Valid() {
		return fmt.Errorf("dock: invalid position %d", int(pos))
	}
	if pos.Docked() {
		if prev, ok := s.Docked(pos); ok && prev.ID != p.ID {
			s.floatPanel(prev)
		}
	}
	if pos == PositionFloat {
		s.floatPanel(p)
		return nil
	}
	if p.Position == PositionFloat && !p.Float.Empty() {
		p.LastFloat = p.Float
	}
	p.Position = pos
	if p.Frac <= 0 {
		p.Frac = DefaultDockFraction(pos)
	}
	p.Frac = clampFraction(p.Frac)
	s.panels[p.ID] = p
	s.notify(Event{Kind: EventCommit, PanelID: p.ID, Panel: p})
	return nil
}

func (s *Store) floatPanel(p Panel) {
	if p.Position == PositionFloat && !p.Float.Empty() {
		p.LastFloat = p.Float
	}
	frame := p.LastFloat
	if frame.Empty() {
		frame = DefaultFloatRect(Viewport{})
	}
	p.Position = PositionFloat
	p.Float = frame
	p.LastFloat = frame
	s.nextZ++
	p.Z = s.nextZ
	s.panels[p.ID] = p
	s.notify(Event{Kind: EventCommit, PanelID: p.ID, Panel: p})
}

// Resize adjusts a panel's size. Fractions clamp into
// [MinDockFraction, MaxDockFraction]; floating frames clamp to the
// minimum panel extent. Fields that do not apply to the panel's mode
// are ignored.
func (s *Store) Resize(id string, size Size) error {
	p, ok := s.panels[id]
	if !ok {
		return ErrPanelNotFound
	}
	changed := false
	if p.Position.Docked() {
		if size.Frac > 0 {
			p.Frac = clampFraction(size.Frac)
			changed = true
		}
	} else if !size.Frame.Empty() {
		frame := size.Frame
		frame.W = maxInt(frame.W, MinPanelWidth)
		frame.H = maxInt(frame.H, MinPanelHeight)
		p.Float = frame
		p.LastFloat = frame
		changed = true
	}
	if !changed {
		return nil
	}
	s.panels[p.ID] = p
	s.notify(Event{Kind: EventResize, PanelID: p.ID, Panel: p})
	return nil
}

// SetPinned marks a panel as pinned. Pinned panels refuse drag
// starts.
func (s *Store) SetPinned(id string, pinned bool) error {
	p, ok := s.panels[id]
	if !ok {
		return ErrPanelNotFound
	}
	if p.Pinned == pinned {
		return nil
	}
	p.Pinned = pinned
	s.panels[p.ID] = p
	s.notify(Event{Kind: EventPin, PanelID: p.ID, Panel: p})
	return nil
}

// Raise moves a floating panel to the top of the stacking order.
// Raising a docked panel is a no-op.
func (s *Store) Raise(id string) error {
	p, ok := s.panels[id]
	if !ok {
		return ErrPanelNotFound
	}
	if p.Position != PositionFloat {
		return nil
	}
	if p.Z == s.nextZ && s.nextZ > 0 {
		return nil
	}
	s.nextZ++
	p.Z = s.nextZ
	s.panels[p.ID] = p
	s.notify(Event{Kind: EventRaise, PanelID: p.ID, Panel: p})
	return nil
}

// Snapshot copies the full panel set for persistence.
func (s *Store) Snapshot() Layout {
	return Layout{Panels: s.Panels()}
}

// Restore replaces the panel set from a snapshot and notifies a
// single wildcard event. Restores bypass the drag machine entirely.
func (s *Store) Restore(l Layout) {
	s.panels = make(map[string]Panel, len(l.Panels))
	s.nextZ = 0
	for _, p := range l.Panels {
		norm := s.normalize(p)
		if norm.ID == "" {
			continue
		}
		s.panels[norm.ID] = norm
	}
	s.notify(Event{Kind: EventRestore})
}

// Subscribe registers fn for every subsequent mutation. Subscribers
// run synchronously on the mutating goroutine, in subscription order.
// The returned func removes the subscription and is safe to call more
// than once.
func (s *Store) Subscribe(fn func(Event)) func() {
	if fn == nil {
		return func() {}
	}
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(ev Event) {
	// Iterate a snapshot of the list: a subscriber added during
	// notification only sees later events.
	subs := s.subs
	for _, sub := range subs {
		sub.fn(ev)
	}
}

func clampFraction(f float64) float64 {
	if f < MinDockFraction {
		return MinDockFraction
	}
	if f > MaxDockFraction {
		return MaxDockFraction
	}
	return f
}
