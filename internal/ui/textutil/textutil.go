// Package textutil provides unicode- and ANSI-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the visual width of a plain string, accounting for unicode characters.
// This is the number of terminal columns the string will occupy.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a plain string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Blank returns a block of spaces, width columns by height lines.
func Blank(width, height int) string {
	if width < 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// PadTop prepends n blank lines, each as wide as the block.
func PadTop(block string, n int) string {
	if n <= 0 {
		return block
	}
	return Blank(lipgloss.Width(block), n) + "\n" + block
}

// Overlay splices block over lines with its top-left corner at column x,
// row y. Lines shorter than x are padded with spaces; rows past the end of
// lines and columns left of zero are clipped. Styling on both sides of the
// splice is preserved.
func Overlay(lines []string, block string, x, y int) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	for i, row := range strings.Split(block, "\n") {
		ly := y + i
		if ly < 0 || ly >= len(out) {
			continue
		}
		rowW := ansi.StringWidth(row)
		col := x
		if col < 0 {
			row = ansi.TruncateLeft(row, -col, "")
			rowW += col
			col = 0
		}
		if rowW <= 0 {
			continue
		}
		base := out[ly]
		baseW := ansi.StringWidth(base)
		if baseW < col {
			base += strings.Repeat(" ", col-baseW)
		}
		left := ansi.Truncate(base, col, "")
		right := ""
		if baseW > col+rowW {
			right = ansi.TruncateLeft(base, col+rowW, "")
		}
		out[ly] = left + row + right
	}
	return out
}
