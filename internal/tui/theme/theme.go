// Package theme provides centralized styling for scour TUI components.
// Following best practices: all styles are defined in one place for consistency.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Design tokens for consistent TUI colors.
var (
	// Accent colors
	Accent      = lipgloss.Color("#3B82F6") // highlight blue
	AccentSoft  = lipgloss.Color("#60A5FA")
	AccentAlt   = lipgloss.Color("#22C55E")
	AccentFocus = lipgloss.Color("#F9F871")

	// Status colors
	Success = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"}
	Warning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
	Error   = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}
	Info    = lipgloss.AdaptiveColor{Light: "#38BDF8", Dark: "#60A5FA"}

	// Text colors
	TextPrimary   = lipgloss.Color("#F8FAFC")
	TextSecondary = lipgloss.Color("#CBD5E1")
	TextMuted     = lipgloss.Color("#94A3B8")
	TextDim       = lipgloss.Color("#64748B")

	// Surface colors
	Surface      = lipgloss.Color("#1A1A1A")
	SurfaceAlt   = lipgloss.Color("#242424")
	SurfaceMuted = lipgloss.Color("#2E2E2E")
	SurfaceInset = lipgloss.Color("#3A3A3A")

	// UI element colors
	Border        = lipgloss.Color("#3A3A3A")
	BorderFocused = Accent
	BorderPinned  = lipgloss.Color("#A78BFA")
	BorderDrag    = AccentFocus
	Background    = Surface
	Highlight     = SurfaceAlt

	// Dock overlay colors
	OverlayBand  = lipgloss.Color("#1E3A5F") // translucent-looking band fill
	OverlayEdge  = AccentSoft
	OverlayGhost = TextDim

	// Dialog colors
	DialogBorderColor = Accent
	DialogLabelColor  = TextMuted
	DialogValueColor  = TextSecondary
	DialogChoiceColor = AccentSoft
)

// Apply sets the renderer background mode for the named theme so adaptive
// colors resolve against the right palette. Names other than "dark" and
// "light" fall back to terminal background detection.
func Apply(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}
}

// ===== Base Styles =====

// App wraps the entire application view
var App = lipgloss.NewStyle()

// ===== Title Styles =====

// Title is the main title style (e.g., "scour")
var Title = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Background(Accent).
	Padding(0, 1)

// HelpTitle for help/shortcut views
var HelpTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary).
	Background(Accent).
	Padding(0, 1).
	MarginBottom(1)

// HeaderBar is the one-line workspace header above the panels.
var HeaderBar = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Background(SurfaceAlt)

// HeaderWorkspace highlights the workspace name in the header.
var HeaderWorkspace = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary).
	Background(SurfaceAlt)

// ===== Panel Styles =====

// PanelBorder frames an unfocused panel.
var PanelBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border)

// PanelBorderFocused frames the focused panel.
var PanelBorderFocused = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(BorderFocused)

// PanelBorderDragging frames the panel being dragged.
var PanelBorderDragging = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder()).
	BorderForeground(BorderDrag)

// PanelHeader is the title strip of an unfocused panel.
var PanelHeader = lipgloss.NewStyle().
	Foreground(TextMuted).
	Background(SurfaceAlt).
	Padding(0, 1)

// PanelHeaderFocused is the title strip of the focused panel.
var PanelHeaderFocused = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary).
	Background(SurfaceMuted).
	Padding(0, 1)

// PanelPinBadge marks pinned panels in their header.
var PanelPinBadge = lipgloss.NewStyle().
	Foreground(BorderPinned)

// ===== Dock Overlay Styles =====

// OverlayBandStyle fills the highlighted dock zone during a drag.
var OverlayBandStyle = lipgloss.NewStyle().
	Foreground(OverlayEdge).
	Background(OverlayBand)

// OverlayGhostStyle draws the outline where the panel would land.
var OverlayGhostStyle = lipgloss.NewStyle().
	Foreground(OverlayEdge)

// OverlayFloatStyle draws the outline for a would-be float position.
var OverlayFloatStyle = lipgloss.NewStyle().
	Foreground(OverlayGhost)

// ===== Status Message Styles =====

// StatusMessage for success/info messages
var StatusMessage = lipgloss.NewStyle().
	Foreground(Success)

// StatusError for error messages
var StatusError = lipgloss.NewStyle().
	Foreground(Error)

// StatusWarning for warning messages
var StatusWarning = lipgloss.NewStyle().
	Foreground(Warning)

// StatusBar is the bottom status line container.
var StatusBar = lipgloss.NewStyle().
	Foreground(TextMuted).
	Background(SurfaceAlt)

// StatusBarKey highlights key hints in the status line.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(AccentSoft).
	Background(SurfaceAlt)

// ===== Dialog Styles =====

// Dialog is the container for modal dialogs
var Dialog = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(DialogBorderColor).
	Background(Background).
	Foreground(TextPrimary).
	Padding(1, 2)

// DialogCompact is a tighter dialog container for dense pickers (e.g. command palette).
var DialogCompact = Dialog.Padding(0, 1)

// DialogTitle for dialog headings
var DialogTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(DialogBorderColor)

// DialogLabel for labels in dialogs
var DialogLabel = lipgloss.NewStyle().
	Foreground(DialogLabelColor)

// DialogValue for values in dialogs
var DialogValue = lipgloss.NewStyle().
	Foreground(DialogValueColor)

// DialogNote for italic notes
var DialogNote = lipgloss.NewStyle().
	Foreground(DialogLabelColor).
	Italic(true)

// ===== List and Table Styles =====

// ListSelected for the cursor row in pickers and issue lists.
var ListSelected = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Background(SurfaceMuted)

// ListDimmed for dimmed/background list views
var ListDimmed = lipgloss.NewStyle().
	Foreground(TextDim)

// TableHeader for sample table column headers.
var TableHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextSecondary).
	Background(SurfaceAlt)

// TableRow for ordinary sample rows.
var TableRow = lipgloss.NewStyle().
	Foreground(TextSecondary)

// TableRowSelected for the cursor row in the sample table.
var TableRowSelected = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Background(SurfaceMuted)

// TableRowFlagged for rows an issue points at.
var TableRowFlagged = lipgloss.NewStyle().
	Foreground(Warning)

// ===== Tree Styles =====

// TreeTable for table nodes in the schema tree.
var TreeTable = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary)

// TreeColumn for column leaves in the schema tree.
var TreeColumn = lipgloss.NewStyle().
	Foreground(TextSecondary)

// TreeType for column type annotations.
var TreeType = lipgloss.NewStyle().
	Foreground(TextDim)

// ===== Severity Badges =====

// SeverityError marks error-level issues.
var SeverityError = lipgloss.NewStyle().
	Bold(true).
	Foreground(Error)

// SeverityWarning marks warning-level issues.
var SeverityWarning = lipgloss.NewStyle().
	Foreground(Warning)

// SeverityInfo marks informational issues.
var SeverityInfo = lipgloss.NewStyle().
	Foreground(Info)

// FavoriteMark marks favorited issues.
var FavoriteMark = lipgloss.NewStyle().
	Foreground(AccentFocus)

// ===== Shortcut/Help Styles =====

// ShortcutKey for keyboard shortcut keys
var ShortcutKey = lipgloss.NewStyle().
	Foreground(AccentSoft).
	Bold(true).
	Width(22)

// ShortcutDesc for shortcut descriptions
var ShortcutDesc = lipgloss.NewStyle().
	Foreground(TextSecondary)

// ShortcutNote for footnotes in help views
var ShortcutNote = lipgloss.NewStyle().
	Foreground(TextMuted).
	Italic(true)

// ===== Error Display Styles =====

// ErrorBox wraps error messages in a visible container
var ErrorBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Error).
	Padding(0, 1).
	MarginTop(1)

// ErrorTitle for error headings
var ErrorTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Error)

// ErrorMessage for error body text
var ErrorMessage = lipgloss.NewStyle().
	Foreground(TextSecondary)

// ===== Helper Functions =====

// FormatSuccess creates a success message
func FormatSuccess(msg string) string {
	return StatusMessage.Render("✓ " + msg)
}

// FormatError creates an error message
func FormatError(msg string) string {
	return StatusError.Render("✗ " + msg)
}

// FormatWarning creates a warning message
func FormatWarning(msg string) string {
	return StatusWarning.Render("⚠ " + msg)
}

// FormatInfo creates an info message
func FormatInfo(msg string) string {
	return StatusMessage.Render("ℹ " + msg)
}
