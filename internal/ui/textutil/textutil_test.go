package textutil

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.LessOrEqual(t, VisualWidth(Truncate("🥺🥺🥺", 4)), 4)
}

func TestBlankAndPadTop(t *testing.T) {
	assert.Equal(t, "   \n   ", Blank(3, 2))
	assert.Equal(t, "", Blank(3, 0))

	got := PadTop("ab\ncd", 1)
	assert.Equal(t, "  \nab\ncd", got)
	assert.Equal(t, "ab", PadTop("ab", 0))
}

func TestOverlay_Middle(t *testing.T) {
	lines := []string{"..........", "..........", ".........."}
	out := Overlay(lines, "AB\nCD", 3, 1)
	require.Len(t, out, 3)
	assert.Equal(t, "..........", out[0])
	assert.Equal(t, "...AB.....", out[1])
	assert.Equal(t, "...CD.....", out[2])
	assert.Equal(t, "..........", lines[1], "input is not modified")
}

func TestOverlay_PadsShortLinesAndClipsRows(t *testing.T) {
	lines := []string{"ab", ""}
	out := Overlay(lines, "XY\nZW\nQQ", 4, 0)
	assert.Equal(t, []string{"ab  XY", "    ZW"}, out)
}

func TestOverlay_NegativeColumnClips(t *testing.T) {
	out := Overlay([]string{"......"}, "ABCD", -2, 0)
	assert.Equal(t, []string{"CD...."}, out)
}

func TestOverlay_PreservesStyling(t *testing.T) {
	styled := "\x1b[31m" + strings.Repeat("r", 8) + "\x1b[0m"
	out := Overlay([]string{styled}, "NO", 2, 0)
	assert.Equal(t, 8, ansi.StringWidth(out[0]))
	assert.Equal(t, "rrNOrrrr", ansi.Strip(out[0]))
}
