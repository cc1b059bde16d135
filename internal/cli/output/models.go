package output

import "time"

type ActionResult struct {
	Action   string         `json:"action"`
	Status   string         `json:"status"`
	Message  string         `json:"message,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
}

// LayoutSummary is one row of `layouts list`.
type LayoutSummary struct {
	Workspace string    `json:"workspace"`
	Panels    int       `json:"panels"`
	SavedAt   time.Time `json:"saved_at"`
}

type LayoutList struct {
	Layouts []LayoutSummary `json:"layouts"`
	Presets []PresetSummary `json:"presets,omitempty"`
	Total   int             `json:"total"`
}

// PanelDetail mirrors one persisted panel for `layouts show`.
type PanelDetail struct {
	ID       string  `json:"id"`
	Title    string  `json:"title,omitempty"`
	Kind     string  `json:"kind"`
	Position string  `json:"position"`
	Frac     float64 `json:"frac,omitempty"`
	Float    Rect    `json:"float"`
	Pinned   bool    `json:"pinned,omitempty"`
}

type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type LayoutDetail struct {
	Workspace string        `json:"workspace"`
	SavedAt   time.Time     `json:"saved_at"`
	Panels    []PanelDetail `json:"panels"`
}

// PresetSummary is one row of the preset section of `layouts list`.
type PresetSummary struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
}

type VersionInfo struct {
	Version        string `json:"version"`
	ServiceVersion string `json:"service_version,omitempty"`
	ServiceURL     string `json:"service_url,omitempty"`
	Compatible     *bool  `json:"compatible,omitempty"`
	CheckError     string `json:"check_error,omitempty"`
}
