package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"github.com/scourlabs/scour/internal/config"
)

// workbenchKeyMap holds the resolved bindings for the dashboard. All
// bindings come out of buildWorkbenchKeyMap so config overrides and
// duplicate detection apply uniformly.
type workbenchKeyMap struct {
	focusNext      key.Binding
	focusPrev      key.Binding
	dockLeft       key.Binding
	dockRight      key.Binding
	dockBottom     key.Binding
	dockCycle      key.Binding
	floatPanel     key.Binding
	togglePin      key.Binding
	toggleSnap     key.Binding
	favorite       key.Binding
	copyRow        key.Binding
	exportReport   key.Binding
	commandPalette key.Binding
	refresh        key.Binding
	resetLayout    key.Binding
	help           key.Binding
	quit           key.Binding
}

// ShortHelp is the status line hint row.
func (k *workbenchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.commandPalette, k.help, k.quit}
}

// FullHelp feeds the expanded help dialog.
func (k *workbenchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.focusNext, k.focusPrev, k.dockLeft, k.dockRight, k.dockBottom, k.dockCycle, k.floatPanel},
		{k.togglePin, k.toggleSnap, k.favorite, k.copyRow},
		{k.exportReport, k.commandPalette, k.refresh, k.resetLayout},
		{k.help, k.quit},
	}
}

type keymapAction struct {
	name     string
	desc     string
	defaults []string
	override []string
	assign   func(*workbenchKeyMap, key.Binding)
}

func buildWorkbenchKeyMap(cfg config.KeymapConfig) (*workbenchKeyMap, error) {
	km := &workbenchKeyMap{}
	used := make(map[string]string)
	actions := []keymapAction{
		{
			name:     "focus_next",
			desc:     "next panel",
			defaults: []string{"tab"},
			override: cfg.FocusNext,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.focusNext = b },
		},
		{
			name:     "focus_prev",
			desc:     "prev panel",
			defaults: []string{"shift+tab"},
			override: cfg.FocusPrev,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.focusPrev = b },
		},
		{
			name:     "dock_left",
			desc:     "dock left",
			defaults: []string{"shift+left"},
			override: cfg.DockLeft,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.dockLeft = b },
		},
		{
			name:     "dock_right",
			desc:     "dock right",
			defaults: []string{"shift+right"},
			override: cfg.DockRight,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.dockRight = b },
		},
		{
			name:     "dock_bottom",
			desc:     "dock bottom",
			defaults: []string{"shift+down"},
			override: cfg.DockBottom,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.dockBottom = b },
		},
		{
			name:     "dock_cycle",
			desc:     "cycle dock",
			defaults: []string{"d"},
			override: cfg.DockCycle,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.dockCycle = b },
		},
		{
			name:     "float_panel",
			desc:     "float",
			defaults: []string{"shift+up"},
			override: cfg.FloatPanel,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.floatPanel = b },
		},
		{
			name:     "toggle_pin",
			desc:     "pin",
			defaults: []string{"p"},
			override: cfg.TogglePin,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.togglePin = b },
		},
		{
			name:     "toggle_snap",
			desc:     "snap",
			defaults: []string{"s"},
			override: cfg.ToggleSnap,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.toggleSnap = b },
		},
		{
			name:     "favorite",
			desc:     "favorite",
			defaults: []string{"f"},
			override: cfg.Favorite,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.favorite = b },
		},
		{
			name:     "copy_row",
			desc:     "copy row",
			defaults: []string{"c"},
			override: cfg.CopyRow,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.copyRow = b },
		},
		{
			name:     "export_report",
			desc:     "export",
			defaults: []string{"e"},
			override: cfg.ExportReport,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.exportReport = b },
		},
		{
			name:     "command_palette",
			desc:     "commands",
			defaults: []string{"space", "ctrl+p"},
			override: cfg.CommandPalette,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.commandPalette = b },
		},
		{
			name:     "refresh",
			desc:     "refresh",
			defaults: []string{"r", "f5"},
			override: cfg.Refresh,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.refresh = b },
		},
		{
			name:     "reset_layout",
			desc:     "reset layout",
			defaults: []string{"ctrl+r"},
			override: cfg.ResetLayout,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.resetLayout = b },
		},
		{
			name:     "help",
			desc:     "help",
			defaults: []string{"?"},
			override: cfg.Help,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.help = b },
		},
		{
			name:     "quit",
			desc:     "quit",
			defaults: []string{"q", "ctrl+c"},
			override: cfg.Quit,
			assign:   func(m *workbenchKeyMap, b key.Binding) { m.quit = b },
		},
	}

	for _, action := range actions {
		keys, err := resolveKeyList(action.name, action.override, action.defaults)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			if prev, ok := used[k]; ok {
				return nil, fmt.Errorf("keymap.%s: key %q already bound to keymap.%s", action.name, k, prev)
			}
			used[k] = action.name
		}
		binding := key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(formatKeyLabel(keys), action.desc),
		)
		action.assign(km, binding)
	}

	return km, nil
}

func resolveKeyList(field string, override, defaults []string) ([]string, error) {
	keys := override
	if len(keys) == 0 {
		keys = defaults
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("keymap.%s: no keys configured", field)
	}
	seen := make(map[string]struct{})
	out := make([]string, 0, len(keys))
	for _, raw := range keys {
		normalized, err := normalizeKeyString(raw)
		if err != nil {
			return nil, fmt.Errorf("keymap.%s: %w", field, err)
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("keymap.%s: no valid keys configured", field)
	}
	return out, nil
}

func normalizeKeyString(raw string) (string, error) {
	if raw != "" && strings.TrimSpace(raw) == "" {
		// The space bar reports as a blank rune.
		return " ", nil
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("invalid key %q (empty)", raw)
	}

	parts := strings.Split(value, "+")
	if len(parts) == 0 {
		return "", invalidKeyError(raw)
	}

	baseRaw := strings.TrimSpace(parts[len(parts)-1])
	if baseRaw == "" {
		return "", fmt.Errorf("invalid key %q (missing base key)", raw)
	}
	mods, err := parseKeyMods(parts[:len(parts)-1], raw)
	if err != nil {
		return "", err
	}
	base, err := normalizeKeyBase(baseRaw, raw)
	if err != nil {
		return "", err
	}
	return joinKeyMods(base, mods), nil
}

type keyMods struct {
	ctrl  bool
	alt   bool
	shift bool
	meta  bool
}

func parseKeyMods(parts []string, raw string) (keyMods, error) {
	var mods keyMods
	for _, modRaw := range parts {
		mod := strings.ToLower(strings.TrimSpace(modRaw))
		if mod == "" {
			continue
		}
		switch mod {
		case "ctrl", "control":
			mods.ctrl = true
		case "alt", "option":
			mods.alt = true
		case "shift":
			mods.shift = true
		case "meta", "cmd", "command", "super":
			mods.meta = true
		default:
			return keyMods{}, invalidKeyError(raw)
		}
	}
	return mods, nil
}

func normalizeKeyBase(baseRaw, raw string) (string, error) {
	baseLower := strings.ToLower(strings.TrimSpace(baseRaw))
	if baseLower == " " || baseLower == "space" {
		// The terminal reports space as a blank rune.
		return " ", nil
	}
	if isSingleRune(baseRaw) {
		return baseRaw, nil
	}
	if isSupportedKeyName(baseLower) {
		return baseLower, nil
	}
	return "", invalidKeyError(raw)
}

func joinKeyMods(base string, mods keyMods) string {
	out := make([]string, 0, 5)
	if mods.ctrl {
		out = append(out, "ctrl")
	}
	if mods.alt {
		out = append(out, "alt")
	}
	if mods.shift {
		out = append(out, "shift")
	}
	if mods.meta {
		out = append(out, "meta")
	}
	out = append(out, base)
	if len(out) == 1 {
		return out[0]
	}
	return strings.Join(out, "+")
}

func isSingleRune(value string) bool {
	if value == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return false
	}
	return size == len(value)
}

func invalidKeyError(raw string) error {
	return fmt.Errorf(
		"invalid key %q (use a single character like \"k\", combos like \"ctrl+shift+w\", or named keys like \"tab\", \"enter\", \"esc\", \"up\", \"space\")",
		raw,
	)
}

func formatKeyLabel(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, prettyKeyLabel(k))
	}
	return strings.Join(labels, "/")
}

func prettyKeyLabel(key string) string {
	switch key {
	case " ":
		return "space"
	case "shift+tab":
		return "⇧tab"
	default:
		parts := strings.Split(key, "+")
		if len(parts) == 0 {
			return key
		}
		base := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
		switch base {
		case "up":
			parts[len(parts)-1] = "↑"
			return strings.Join(parts, "+")
		case "down":
			parts[len(parts)-1] = "↓"
			return strings.Join(parts, "+")
		case "left":
			parts[len(parts)-1] = "←"
			return strings.Join(parts, "+")
		case "right":
			parts[len(parts)-1] = "→"
			return strings.Join(parts, "+")
		default:
			return key
		}
	}
}

func isSupportedKeyName(key string) bool {
	_, ok := supportedSpecialKeys[key]
	return ok
}

var supportedSpecialKeys = func() map[string]struct{} {
	keys := map[string]struct{}{
		"tab":              {},
		"shift+tab":        {},
		"enter":            {},
		"esc":              {},
		"backspace":        {},
		"delete":           {},
		"insert":           {},
		"home":             {},
		"end":              {},
		"pgup":             {},
		"pgdown":           {},
		"ctrl+pgup":        {},
		"ctrl+pgdown":      {},
		"up":               {},
		"down":             {},
		"left":             {},
		"right":            {},
		"ctrl+up":          {},
		"ctrl+down":        {},
		"ctrl+left":        {},
		"ctrl+right":       {},
		"shift+up":         {},
		"shift+down":       {},
		"shift+left":       {},
		"shift+right":      {},
		"ctrl+shift+up":    {},
		"ctrl+shift+down":  {},
		"ctrl+shift+left":  {},
		"ctrl+shift+right": {},
		"ctrl+home":        {},
		"ctrl+end":         {},
		"shift+home":       {},
		"shift+end":        {},
		"ctrl+shift+home":  {},
		"ctrl+shift+end":   {},
		"f1":               {},
		"f2":               {},
		"f3":               {},
		"f4":               {},
		"f5":               {},
		"f6":               {},
		"f7":               {},
		"f8":               {},
		"f9":               {},
		"f10":              {},
		"f11":              {},
		"f12":              {},
		"ctrl+@":           {},
		"ctrl+\\":          {},
		"ctrl+]":           {},
		"ctrl+^":           {},
		"ctrl+_":           {},
	}
	for r := 'a'; r <= 'z'; r++ {
		keys["ctrl+"+string(r)] = struct{}{}
	}
	return keys
}()

func keyLabel(binding key.Binding) string {
	help := binding.Help().Key
	if help != "" {
		return help
	}
	return formatKeyLabel(binding.Keys())
}
