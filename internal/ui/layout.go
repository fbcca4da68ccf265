package ui

import (
	"math"
	"strings"

	"proposal/internal/proposal"
	"proposal/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Used before the first WindowSizeMsg (and in tests).
	defaultWidth  = 80
	defaultHeight = 24

	maxTextWidth = 60
	buttonGap    = 2
	yesLabel     = "Absolutely Yes!"
)

// frame is one laid-out screen plus the hit boxes of the buttons on it.
type frame struct {
	lines []string
	yes   proposal.Rect
	no    proposal.Rect
}

// String joins the frame into the string handed to Bubble Tea.
func (f frame) String() string {
	return strings.Join(f.lines, "\n")
}

// placed is a block positioned by stack.
type placed struct {
	top, left     int
	width, height int
}

// stack centers every block horizontally within width and stacks them,
// centering the whole column vertically within height. An empty block is a
// blank line. The result has at least height lines.
func stack(blocks []string, width, height int) ([]string, []placed) {
	total := 0
	for _, b := range blocks {
		total += lipgloss.Height(b)
	}
	top := max(0, (height-total)/2)

	lines := make([]string, top, max(height, top+total))
	pos := make([]placed, len(blocks))
	y := top
	for i, b := range blocks {
		w, h := lipgloss.Width(b), lipgloss.Height(b)
		left := max(0, (width-w)/2)
		pad := strings.Repeat(" ", left)
		for _, line := range strings.Split(b, "\n") {
			if line == "" {
				lines = append(lines, "")
				continue
			}
			lines = append(lines, pad+line)
		}
		pos[i] = placed{top: y, left: left, width: w, height: h}
		y += h
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines, pos
}

// yesButton renders the Yes button. Padding grows with scale: 2 columns and
// 0 rows at 1x, up to 6 columns and 2 rows at 3x.
func yesButton(scale float64, focused bool) string {
	px := int(math.Round(2 * scale))
	py := int(math.Round(scale - 1))
	st := Styles.YesButton.Padding(py, px)
	if focused {
		st = focusedBorder(st)
	}
	return st.Render(yesLabel)
}

// noButton renders the No button.
func noButton(label string, focused bool) string {
	st := Styles.NoButton
	if focused {
		st = focusedBorder(st)
	}
	return st.Render(label)
}

// buttonRow joins the buttons side by side, vertically centered against the
// tallest. Returns the row and the offsets of each button within it.
func buttonRow(buttons ...string) (string, []proposal.Rect) {
	rowH := 0
	for _, b := range buttons {
		rowH = max(rowH, lipgloss.Height(b))
	}
	parts := make([]string, 0, 2*len(buttons))
	rects := make([]proposal.Rect, len(buttons))
	x := 0
	for i, b := range buttons {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", buttonGap))
			x += buttonGap
		}
		w, h := lipgloss.Width(b), lipgloss.Height(b)
		top := (rowH - h) / 2
		parts = append(parts, textutil.PadTop(b, top))
		rects[i] = proposal.Rect{X: float64(x), Y: float64(top), W: float64(w), H: float64(h)}
		x += w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), rects
}

// offset translates r by a placed block's origin.
func offset(r proposal.Rect, p placed) proposal.Rect {
	r.X += float64(p.left)
	r.Y += float64(p.top)
	return r
}

// fit clips or pads lines to exactly height rows.
func fit(lines []string, height int) []string {
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
