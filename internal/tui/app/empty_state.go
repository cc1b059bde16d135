package app

import (
	"fmt"
	"strings"
)

func (m *Model) emptyStateMessage() string {
	paletteKey := "ctrl+p"
	resetKey := "ctrl+r"
	if m.keys != nil {
		paletteKey = keyLabel(m.keys.commandPalette)
		resetKey = keyLabel(m.keys.resetLayout)
	}
	return strings.Join([]string{
		"No panels in this workspace.",
		"",
		fmt.Sprintf("Hit %s for commands or %s to restore the default layout.", paletteKey, resetKey),
	}, "\n")
}
