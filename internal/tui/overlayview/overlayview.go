// Package overlayview composites floating panels and dock previews
// over the workspace view. Everything is painted into a cell buffer so
// overlapping regions clip cleanly instead of tearing mid-line.
package overlayview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/tui/theme"
)

// Canvas is a fixed-size cell buffer the view paints into back to
// front: workspace first, floats by stacking order, drag overlay last.
type Canvas struct {
	buf    *cellbuf.Buffer
	width  int
	height int
}

// NewCanvas fills a buffer with the base view, padded or clipped to
// width by height.
func NewCanvas(base string, width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	buf := cellbuf.NewBuffer(width, height)
	cellbuf.SetContent(buf, padLines(base, width, height))
	return &Canvas{buf: buf, width: width, height: height}
}

// Paint draws content opaquely at x,y, clipped to the canvas. Cells
// behind the block are erased first so shorter lines inside the block
// do not leak what was underneath.
func (c *Canvas) Paint(content string, x, y int) {
	if c == nil || c.width <= 0 || c.height <= 0 {
		return
	}
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x+w > c.width {
		w = c.width - x
	}
	if y+h > c.height {
		h = c.height - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	rect := cellbuf.Rect(x, y, w, h)

	bgLine := lipgloss.NewStyle().Background(theme.Background).Render(strings.Repeat(" ", w))
	bgBlock := strings.Repeat(bgLine+"\n", h-1) + bgLine
	cellbuf.SetContentRect(c.buf, bgBlock, rect)
	cellbuf.SetContentRect(c.buf, content, rect)
}

// FillBand paints a solid zone-highlight block with a centered label.
// Used for the dock target band while a drag hovers a zone.
func (c *Canvas) FillBand(r dock.Rect, label string, style lipgloss.Style) {
	if c == nil || r.Empty() {
		return
	}
	lines := make([]string, r.H)
	labelRow := r.H / 2
	for i := range lines {
		if i == labelRow && label != "" {
			lines[i] = style.Render(centerLine(label, r.W))
			continue
		}
		lines[i] = style.Render(strings.Repeat(" ", r.W))
	}
	c.Paint(strings.Join(lines, "\n"), r.X, r.Y)
}

// Outline paints only the border cells of r, leaving the interior
// untouched. This is the ghost frame showing where a dragged panel
// would land without hiding the content underneath.
func (c *Canvas) Outline(r dock.Rect, style lipgloss.Style) {
	if c == nil || r.Empty() {
		return
	}
	if r.W < 2 || r.H < 2 {
		c.FillBand(r, "", style)
		return
	}
	border := lipgloss.RoundedBorder()

	top := border.TopLeft + strings.Repeat(border.Top, r.W-2) + border.TopRight
	bottom := border.BottomLeft + strings.Repeat(border.Bottom, r.W-2) + border.BottomRight
	c.paintRaw(style.Render(top), r.X, r.Y, r.W, 1)
	c.paintRaw(style.Render(bottom), r.X, r.Y+r.H-1, r.W, 1)

	if r.H > 2 {
		side := strings.TrimSuffix(strings.Repeat(style.Render(border.Left)+"\n", r.H-2), "\n")
		c.paintRaw(side, r.X, r.Y+1, 1, r.H-2)
		c.paintRaw(side, r.X+r.W-1, r.Y+1, 1, r.H-2)
	}
}

// paintRaw writes content into a rect without the opaque backing fill.
func (c *Canvas) paintRaw(content string, x, y, w, h int) {
	if x < 0 || y < 0 {
		return
	}
	if x+w > c.width {
		w = c.width - x
	}
	if y+h > c.height {
		h = c.height - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	cellbuf.SetContentRect(c.buf, content, cellbuf.Rect(x, y, w, h))
}

// Render flattens the buffer back into a frame string.
func (c *Canvas) Render() string {
	if c == nil || c.height <= 0 {
		return ""
	}
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		_, line := cellbuf.RenderLine(c.buf, y)
		lines[y] = line
	}
	return strings.Join(lines, "\n")
}

func padLines(text string, width, height int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = fitLine(line, width)
	}
	for len(lines) < height {
		lines = append(lines, fitLine("", width))
	}
	return strings.Join(lines, "\n")
}

func fitLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	lineWidth := lipgloss.Width(text)
	if lineWidth == width {
		return text
	}
	if lineWidth < width {
		return text + strings.Repeat(" ", width-lineWidth)
	}
	truncated := ansi.Truncate(text, width, "")
	padding := width - lipgloss.Width(truncated)
	if padding <= 0 {
		return truncated
	}
	return truncated + strings.Repeat(" ", padding)
}

func centerLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	lineWidth := lipgloss.Width(text)
	if lineWidth >= width {
		return ansi.Truncate(text, width, "")
	}
	leftPad := (width - lineWidth) / 2
	rightPad := width - lineWidth - leftPad
	return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", rightPad)
}
