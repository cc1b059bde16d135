// Package presets ships named panel arrangements and resolves them
// against user and project overrides.
package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/identity"
)

// DefaultPresetName opens when no preset is requested and no snapshot
// exists.
const DefaultPresetName = "review"

// Preset is a named panel arrangement.
type Preset struct {
	Name        string        `yaml:"name,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Panels      []PanelConfig `yaml:"panels,omitempty"`
}

// PanelConfig describes one panel of a preset.
type PanelConfig struct {
	ID       string     `yaml:"id"`
	Title    string     `yaml:"title,omitempty"`
	Kind     string     `yaml:"kind"`
	Position string     `yaml:"position,omitempty"`
	Frac     float64    `yaml:"frac,omitempty"`
	Float    RectConfig `yaml:"float,omitempty"`
	Pinned   bool       `yaml:"pinned,omitempty"`
}

// RectConfig is a float frame in cells.
type RectConfig struct {
	X int `yaml:"x,omitempty"`
	Y int `yaml:"y,omitempty"`
	W int `yaml:"w,omitempty"`
	H int `yaml:"h,omitempty"`
}

// ToLayout converts the preset into a panel layout. Panels with unknown
// kinds or positions are dropped and reported by name.
func (p *Preset) ToLayout() (dock.Layout, []string) {
	var layout dock.Layout
	var dropped []string
	if p == nil {
		return layout, nil
	}
	for _, pc := range p.Panels {
		kind, ok := dock.ParseKind(pc.Kind)
		if !ok {
			dropped = append(dropped, pc.ID)
			continue
		}
		position := dock.PositionFloat
		if strings.TrimSpace(pc.Position) != "" {
			position, ok = dock.ParsePosition(pc.Position)
			if !ok {
				dropped = append(dropped, pc.ID)
				continue
			}
		}
		panel := dock.Panel{
			ID:       pc.ID,
			Title:    pc.Title,
			Kind:     kind,
			Position: position,
			Frac:     pc.Frac,
			Float:    dock.Rect{X: pc.Float.X, Y: pc.Float.Y, W: pc.Float.W, H: pc.Float.H},
			Pinned:   pc.Pinned,
		}
		layout.Panels = append(layout.Panels, panel)
	}
	return layout, dropped
}

// ToYAML renders the preset for config show.
func (p *Preset) ToYAML() (string, error) {
	if p == nil {
		return "", fmt.Errorf("nil preset")
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadPresetFile reads one preset YAML file.
func LoadPresetFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", filepath.Base(path), err)
	}
	return &preset, nil
}

// projectFile holds the subset of a project config the preset loader
// cares about.
type projectFile struct {
	Layout *Preset `yaml:"layout,omitempty"`
}

// LoadProjectPreset reads the inline layout from .scour.yml in dir.
func LoadProjectPreset(dir string) (*Preset, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, os.ErrNotExist
	}
	var lastErr error = os.ErrNotExist
	for _, name := range []string{identity.ProjectConfigFileYML, identity.ProjectConfigFileYAML} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var pf projectFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if pf.Layout == nil {
			lastErr = os.ErrNotExist
			continue
		}
		return pf.Layout, nil
	}
	return nil, lastErr
}
