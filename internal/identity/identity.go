package identity

import (
	"strings"
)

const (
	BrandName = "Scour"
	// AppSlug is the canonical identifier for user-facing and on-disk state.
	// It intentionally matches the only supported CLI binary name.
	AppSlug = "scour"
	CLIName = "scour"

	ProjectConfigFileYML  = ".scour.yml"
	ProjectConfigFileYAML = ".scour.yaml"

	GlobalConfigFile = "config.yml"
	GlobalPrefsFile  = "prefs.toml"
	GlobalPresetsDir = "presets"
	LayoutsDir       = "layouts"
)

var (
	InputAliases = []string{"sc"}
)

func IsCLICommandToken(token string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(token))
	if trimmed == "" {
		return false
	}
	if trimmed == CLIName {
		return true
	}
	for _, alias := range InputAliases {
		if trimmed == alias {
			return true
		}
	}
	return false
}
