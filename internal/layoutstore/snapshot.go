package layoutstore

import (
	"time"

	"github.com/scourlabs/scour/internal/dock"
)

// CurrentSchemaVersion identifies the persisted snapshot schema.
const CurrentSchemaVersion = 1

// Snapshot is a persisted panel layout for one workspace.
type Snapshot struct {
	SchemaVersion int          `json:"schemaVersion"`
	Workspace     string       `json:"workspace"`
	SavedAt       time.Time    `json:"savedAt"`
	Panels        []PanelState `json:"panels"`
}

// PanelState mirrors dock.Panel with string enums for a stable wire
// form.
type PanelState struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Kind      string    `json:"kind"`
	Position  string    `json:"position"`
	Frac      float64   `json:"frac,omitempty"`
	Float     RectState `json:"float"`
	LastFloat RectState `json:"lastFloat"`
	Z         int       `json:"z,omitempty"`
	Pinned    bool      `json:"pinned,omitempty"`
}

type RectState struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

func rectState(r dock.Rect) RectState {
	return RectState{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func (r RectState) rect() dock.Rect {
	return dock.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// FromLayout captures a dock layout for a workspace. SavedAt and the
// schema version are stamped on Save.
func FromLayout(workspace string, l dock.Layout) Snapshot {
	snap := Snapshot{Workspace: workspace, Panels: make([]PanelState, 0, len(l.Panels))}
	for _, p := range l.Panels {
		snap.Panels = append(snap.Panels, PanelState{
			ID:        p.ID,
			Title:     p.Title,
			Kind:      p.Kind.String(),
			Position:  p.Position.String(),
			Frac:      p.Frac,
			Float:     rectState(p.Float),
			LastFloat: rectState(p.LastFloat),
			Z:         p.Z,
			Pinned:    p.Pinned,
		})
	}
	return snap
}

// ToLayout converts a snapshot back into a dock layout. Entries whose
// kind or position fails to parse are dropped; their IDs are returned
// so the caller can log them. Restores go through store operations,
// never through the drag machine.
func (s Snapshot) ToLayout() (dock.Layout, []string) {
	layout := dock.Layout{Panels: make([]dock.Panel, 0, len(s.Panels))}
	var dropped []string
	for _, st := range s.Panels {
		kind, ok := dock.ParseKind(st.Kind)
		if !ok {
			dropped = append(dropped, st.ID)
			continue
		}
		pos, ok := dock.ParsePosition(st.Position)
		if !ok {
			dropped = append(dropped, st.ID)
			continue
		}
		layout.Panels = append(layout.Panels, dock.Panel{
			ID:        st.ID,
			Title:     st.Title,
			Kind:      kind,
			Position:  pos,
			Frac:      st.Frac,
			Float:     st.Float.rect(),
			LastFloat: st.LastFloat.rect(),
			Z:         st.Z,
			Pinned:    st.Pinned,
		})
	}
	return layout, dropped
}
