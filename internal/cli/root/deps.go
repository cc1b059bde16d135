package root

import (
	"io"
	"os"

	"github.com/scourlabs/scour/internal/identity"
)

// Dependencies provides external services for CLI commands.
type Dependencies struct {
	Version string
	AppName string
	WorkDir string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// DefaultDependencies returns dependencies wired to the running process.
func DefaultDependencies(version string) Dependencies {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}
	return Dependencies{
		Version: version,
		AppName: identity.CLIName,
		WorkDir: workDir,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}
