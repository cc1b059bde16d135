package logging

import "strings"

type Mode uint8

const (
	ModeCLI Mode = iota + 1
	ModeDashboard
)

// ModeFromArgs picks the logging mode from raw process args. A bare
// invocation (or flags only) opens the dashboard; known subcommands run
// as plain CLI calls.
func ModeFromArgs(args []string) Mode {
	if len(args) < 2 {
		return ModeDashboard
	}
	cmd := strings.TrimSpace(args[1])
	if cmd == "" || strings.HasPrefix(cmd, "-") {
		return ModeDashboard
	}
	switch strings.ToLower(cmd) {
	case "layouts", "init", "config", "version", "help":
		return ModeCLI
	}
	return ModeDashboard
}

func (m Mode) String() string {
	switch m {
	case ModeDashboard:
		return "dashboard"
	default:
		return "cli"
	}
}
