package root

import (
	"strings"

	"github.com/scourlabs/scour/internal/config"
)

// ResolveConfigPath picks the config file for this invocation. An
// explicit --config flag wins; otherwise a project-level .scour.yml in
// the working directory shadows the global config.
func ResolveConfigPath(flagPath, workDir string) (string, error) {
	if path := strings.TrimSpace(flagPath); path != "" {
		return path, nil
	}
	if path, ok := config.FindProjectConfig(workDir); ok {
		return path, nil
	}
	return config.DefaultPath()
}
