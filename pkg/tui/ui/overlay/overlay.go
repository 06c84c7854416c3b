// Package overlay composes a floating pane on top of a rendered
// background without disturbing content outside the pane's bounds.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment within the background frame.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Compose draws foreground over background inside a width x height
// frame. The background is padded or clipped to the frame first, so the
// result always has exactly height lines of width cells.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalize(background, width, height)
	if foreground == "" {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	fgWidth := 0
	for _, line := range fgLines {
		if w := lipgloss.Width(line); w > fgWidth {
			fgWidth = w
		}
	}
	if fgWidth == 0 {
		return strings.Join(bgLines, "\n")
	}
	if fgWidth > width {
		fgWidth = width
	}
	fgHeight := len(fgLines)
	if fgHeight > height {
		fgLines = fgLines[:height]
		fgHeight = height
	}

	offsetX, offsetY := Offsets(width, height, fgWidth, fgHeight, placement)

	for row, fgLine := range fgLines {
		destY := offsetY + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine = pad(ansi.Truncate(fgLine, fgWidth, ""), fgWidth)

		base := bgLines[destY]
		prefix := ansi.Cut(base, 0, offsetX)
		suffix := ansi.Cut(base, offsetX+fgWidth, width)
		bgLines[destY] = prefix + fgLine + suffix
	}

	return strings.Join(bgLines, "\n")
}

// Offsets resolves the pane's top-left corner for a placement,
// clamped so the pane stays inside the frame.
func Offsets(width, height, paneWidth, paneHeight int, placement Placement) (int, int) {
	h := placement.Horizontal
	if h == 0 {
		h = lipgloss.Center
	}
	v := placement.Vertical
	if v == 0 {
		v = lipgloss.Center
	}

	offsetX := placement.MarginX
	switch h {
	case lipgloss.Right:
		offsetX = width - paneWidth - placement.MarginX
	case lipgloss.Center:
		offsetX = (width - paneWidth) / 2
	}
	offsetX = clamp(offsetX, 0, width-paneWidth)

	offsetY := placement.MarginY
	switch v {
	case lipgloss.Bottom:
		offsetY = height - paneHeight - placement.MarginY
	case lipgloss.Center:
		offsetY = (height - paneHeight) / 2
	}
	offsetY = clamp(offsetY, 0, height-paneHeight)

	return offsetX, offsetY
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(ansi.Truncate(lines[i], width, ""), width)
	}
	return lines
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
