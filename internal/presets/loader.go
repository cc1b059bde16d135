package presets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scourlabs/scour/internal/appdirs"
	"github.com/scourlabs/scour/internal/identity"
)

//go:embed defaults/*.yml
var embeddedPresets embed.FS

// Info provides metadata about an available preset.
type Info struct {
	Name        string
	Description string
	Source      string // "builtin", "global", "project"
	Path        string // empty for builtin
}

// Loader resolves presets from builtin, global, and project sources.
type Loader struct {
	globalDir  string
	projectDir string

	builtin map[string]*Preset
	global  map[string]*Preset
	project *Preset
}

// NewLoader creates a loader with the default global presets dir.
func NewLoader() (*Loader, error) {
	configDir, err := appdirs.ConfigDirPath()
	if err != nil {
		return nil, err
	}
	return NewLoaderWithPaths(filepath.Join(configDir, identity.GlobalPresetsDir), ""), nil
}

// NewLoaderWithPaths creates a loader with custom paths.
func NewLoaderWithPaths(globalDir, projectDir string) *Loader {
	return &Loader{
		globalDir:  globalDir,
		projectDir: projectDir,
		builtin:    make(map[string]*Preset),
		global:     make(map[string]*Preset),
	}
}

// SetProjectDir sets the project directory for local layout detection.
func (l *Loader) SetProjectDir(dir string) {
	l.projectDir = dir
}

// LoadAll loads presets from all sources.
func (l *Loader) LoadAll() error {
	if err := l.LoadBuiltins(); err != nil {
		return err
	}
	if err := l.LoadGlobal(); err != nil {
		return err
	}
	return l.LoadProject()
}

// LoadBuiltins loads the embedded default presets.
func (l *Loader) LoadBuiltins() error {
	entries, err := embeddedPresets.ReadDir("defaults")
	if err != nil {
		return fmt.Errorf("read embedded presets: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}
		data, err := embeddedPresets.ReadFile("defaults/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read embedded %s: %w", entry.Name(), err)
		}
		var preset Preset
		if err := yaml.Unmarshal(data, &preset); err != nil {
			return fmt.Errorf("parse embedded %s: %w", entry.Name(), err)
		}
		name := preset.Name
		if name == "" {
			name = strings.TrimSuffix(entry.Name(), ".yml")
			preset.Name = name
		}
		l.builtin[name] = &preset
	}
	return nil
}

// LoadGlobal loads presets from the user's presets directory. Individual
// broken files are skipped.
func (l *Loader) LoadGlobal() error {
	if l.globalDir == "" {
		return nil
	}
	info, err := os.Stat(l.globalDir)
	if err != nil || !info.IsDir() {
		return nil
	}
	entries, err := os.ReadDir(l.globalDir)
	if err != nil {
		return fmt.Errorf("read presets dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isPresetFileName(entry.Name()) {
			continue
		}
		preset, err := LoadPresetFile(filepath.Join(l.globalDir, entry.Name()))
		if err != nil {
			continue
		}
		key := preset.Name
		if key == "" {
			key = strings.TrimSuffix(strings.TrimSuffix(entry.Name(), ".yml"), ".yaml")
			preset.Name = key
		}
		l.global[key] = preset
	}
	return nil
}

// LoadProject loads the inline layout from the project config, if any.
func (l *Loader) LoadProject() error {
	if l.projectDir == "" {
		return nil
	}
	preset, err := LoadProjectPreset(l.projectDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	l.project = preset
	return nil
}

// Get retrieves a preset by name with precedence project > global >
// builtin. An empty name resolves to the project layout when present,
// otherwise the default preset.
func (l *Loader) Get(name string) (*Preset, string, error) {
	if name == "" {
		if l.project != nil {
			return l.project, "project", nil
		}
		name = DefaultPresetName
	}
	if l.project != nil && l.project.Name == name {
		return l.project, "project", nil
	}
	if preset, ok := l.global[name]; ok {
		return preset, "global", nil
	}
	if preset, ok := l.builtin[name]; ok {
		return preset, "builtin", nil
	}
	return nil, "", fmt.Errorf("preset %q not found", name)
}

// List returns info about all available presets sorted by name.
func (l *Loader) List() []Info {
	seen := make(map[string]bool)
	var out []Info

	if l.project != nil {
		name := l.project.Name
		if name == "" {
			name = "(project)"
		}
		out = append(out, Info{
			Name:        name,
			Description: l.project.Description,
			Source:      "project",
			Path:        filepath.Join(l.projectDir, identity.ProjectConfigFileYML),
		})
		seen[name] = true
	}
	for name, preset := range l.global {
		if seen[name] {
			continue
		}
		out = append(out, Info{
			Name:        name,
			Description: preset.Description,
			Source:      "global",
			Path:        filepath.Join(l.globalDir, name+".yml"),
		})
		seen[name] = true
	}
	for name, preset := range l.builtin {
		if seen[name] {
			continue
		}
		out = append(out, Info{
			Name:        name,
			Description: preset.Description,
			Source:      "builtin",
		})
		seen[name] = true
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetBuiltin returns an embedded preset by name without a loader.
func GetBuiltin(name string) (*Preset, error) {
	data, err := embeddedPresets.ReadFile("defaults/" + name + ".yml")
	if err != nil {
		return nil, fmt.Errorf("builtin preset %q not found", name)
	}
	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("parse builtin %s: %w", name, err)
	}
	if preset.Name == "" {
		preset.Name = name
	}
	return &preset, nil
}

// ListBuiltins returns the names of all embedded presets.
func ListBuiltins() ([]string, error) {
	entries, err := embeddedPresets.ReadDir("defaults")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yml"))
	}
	sort.Strings(names)
	return names, nil
}

func isPresetFileName(name string) bool {
	return strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")
}
