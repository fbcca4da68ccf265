package proposal

import (
	"testing"

	"proposal/internal/proposal/content"

	"github.com/stretchr/testify/assert"
)

func TestHeading_InitialAndPersuasive(t *testing.T) {
	c := content.Default()
	n := len(c.Persuasive)

	assert.Equal(t, c.Initial, Heading(c, 0, false, ""))
	for count := 1; count <= 30; count++ {
		want := c.Persuasive[min(count-1, n-1)]
		assert.Equal(t, want, Heading(c, count, false, ""), "count=%d", count)
	}
}

func TestHeading_HoverTauntWins(t *testing.T) {
	c := content.Default()
	assert.Equal(t, "taunt", Heading(c, 5, true, "taunt"))
	assert.Equal(t, "taunt", Heading(c, 0, true, "taunt"))
	// no taunt rolled yet falls back to the count-based phrase
	assert.Equal(t, c.Persuasive[4], Heading(c, 5, true, ""))
}

func TestPersuasiveIndex_Clamped(t *testing.T) {
	tests := []struct {
		rejections, n, want int
	}{
		{1, 6, 0},
		{6, 6, 5},
		{7, 6, 5},
		{100, 6, 5},
		{0, 6, 0},
		{3, 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PersuasiveIndex(tt.rejections, tt.n), "rejections=%d n=%d", tt.rejections, tt.n)
	}
}

func TestMoodFor(t *testing.T) {
	assert.Equal(t, content.MoodShy, MoodFor(0, false))
	assert.Equal(t, content.MoodSad1, MoodFor(1, false))
	assert.Equal(t, content.MoodSad2, MoodFor(2, false))
	for _, n := range []int{3, 4, 10, 1000} {
		assert.Equal(t, content.MoodAngry, MoodFor(n, false), "count=%d", n)
	}
	for _, n := range []int{0, 1, 2, 3, 50} {
		assert.Equal(t, content.MoodCelebration, MoodFor(n, true), "count=%d", n)
	}
}

func TestMoodFor_NeverHappy(t *testing.T) {
	for n := 0; n < 20; n++ {
		assert.NotEqual(t, content.MoodHappy, MoodFor(n, false))
		assert.NotEqual(t, content.MoodHappy, MoodFor(n, true))
	}
}

func TestYesScale(t *testing.T) {
	assert.InDelta(t, 1.0, YesScale(0), 1e-9)
	assert.InDelta(t, 1.2, YesScale(1), 1e-9)
	assert.InDelta(t, 2.0, YesScale(5), 1e-9)
	assert.InDelta(t, 3.0, YesScale(10), 1e-9)
	assert.InDelta(t, 3.0, YesScale(20), 1e-9)
}

func TestNoLabel(t *testing.T) {
	assert.Equal(t, "No", NoLabel(0))
	assert.Equal(t, "Still No?", NoLabel(1))
	assert.Equal(t, "Still No?", NoLabel(12))
}

func TestQuestion(t *testing.T) {
	c := content.Default()
	assert.Equal(t, "Disha, will you be mine?", Question(c))
	c.Question = "Will you?"
	assert.Equal(t, "Will you?", Question(c))
}

func TestQuestion_LiteralPercentAndExtraVerbs(t *testing.T) {
	c := content.Default()
	c.Name = "Sam"
	c.Question = "%s, 100% sure? %d %s"
	assert.Equal(t, "Sam, 100% sure? %d %s", Question(c))
}

func TestPickTauntAndCaption_UseInjectedRand(t *testing.T) {
	c := content.Default()
	for i := range c.Hover {
		assert.Equal(t, c.Hover[i], PickTaunt(c, &scriptedRand{ints: []int{i}}))
	}
	for i := range c.Celebrations {
		assert.Equal(t, c.Celebrations[i], PickCaption(c, &scriptedRand{ints: []int{i}}))
	}
}

func TestPick_SeededRandCoversAllEntries(t *testing.T) {
	c := content.Default()
	rng := NewRand(42)
	seen := map[string]bool{}
	for range 500 {
		seen[PickTaunt(c, rng)] = true
	}
	assert.Len(t, seen, len(c.Hover))
}
