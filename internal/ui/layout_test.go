package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_CentersBlocks(t *testing.T) {
	lines, pos := stack([]string{"abcd", "", "xy\nxy"}, 10, 8)

	require.Len(t, lines, 8)
	require.Len(t, pos, 3)
	// 4 lines of content in 8 rows leaves 2 above.
	assert.Equal(t, placed{top: 2, left: 3, width: 4, height: 1}, pos[0])
	assert.Equal(t, 3, pos[1].top)
	assert.Equal(t, placed{top: 4, left: 4, width: 2, height: 2}, pos[2])
	assert.Equal(t, "   abcd", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "    xy", lines[5])
}

func TestStack_OverflowKeepsAllLines(t *testing.T) {
	lines, pos := stack([]string{"a", "b", "c"}, 3, 2)
	assert.Len(t, lines, 3)
	assert.Equal(t, 0, pos[0].top)
	assert.Equal(t, []string{"a", "b"}, fit(lines, 2))
	assert.Len(t, fit([]string{"a"}, 3), 3)
}

func TestYesButton_GrowsWithScale(t *testing.T) {
	small := yesButton(1, false)
	large := yesButton(3, false)

	assert.Equal(t, 3, lipgloss.Height(small))
	assert.Equal(t, 7, lipgloss.Height(large))
	assert.Equal(t, lipgloss.Width(small)+8, lipgloss.Width(large))
	assert.Equal(t, lipgloss.Width(small), lipgloss.Width(yesButton(1, true)), "focus does not change size")
}

func TestButtonRow_RectsAndVerticalCentering(t *testing.T) {
	yes := yesButton(3, false)
	no := noButton("No", false)

	row, rects := buttonRow(yes, no)
	require.Len(t, rects, 2)
	assert.Equal(t, lipgloss.Height(yes), lipgloss.Height(row))

	assert.Equal(t, 0.0, rects[0].X)
	assert.Equal(t, 0.0, rects[0].Y)
	assert.Equal(t, float64(lipgloss.Width(yes)+buttonGap), rects[1].X)
	assert.Equal(t, 2.0, rects[1].Y, "3-row No centered against 7-row Yes")
	assert.Equal(t, float64(lipgloss.Width(no)), rects[1].W)
	assert.Equal(t, 3.0, rects[1].H)
}
