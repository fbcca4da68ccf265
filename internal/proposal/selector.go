package proposal

import (
	"strings"

	"proposal/internal/proposal/content"
)

// MaxYesScale caps the growth of the Yes button.
const MaxYesScale = 3.0

// yesGrowthPerRejection is how much the Yes button grows per rejection.
const yesGrowthPerRejection = 0.2

// Heading returns the main phrase for the given state. An active hover message
// wins; otherwise the initial phrase is shown before any rejection, and after
// that the persuasive list is walked, repeating its last entry once exhausted.
func Heading(c content.Content, rejections int, hoverActive bool, taunt string) string {
	if hoverActive && taunt != "" {
		return taunt
	}
	if rejections <= 0 || len(c.Persuasive) == 0 {
		return c.Initial
	}
	return c.Persuasive[PersuasiveIndex(rejections, len(c.Persuasive))]
}

// PersuasiveIndex is min(rejections-1, n-1), floored at zero.
func PersuasiveIndex(rejections, n int) int {
	i := min(rejections-1, n-1)
	return max(i, 0)
}

// MoodFor maps state to a mood image. Happy is never returned.
func MoodFor(rejections int, accepted bool) content.Mood {
	switch {
	case accepted:
		return content.MoodCelebration
	case rejections <= 0:
		return content.MoodShy
	case rejections == 1:
		return content.MoodSad1
	case rejections == 2:
		return content.MoodSad2
	default:
		return content.MoodAngry
	}
}

// YesScale is the visual scale of the Yes button: 1 + 0.2 per rejection, capped at 3.
func YesScale(rejections int) float64 {
	return min(MaxYesScale, 1+float64(max(rejections, 0))*yesGrowthPerRejection)
}

// NoLabel is the text on the No button.
func NoLabel(rejections int) string {
	if rejections == 0 {
		return "No"
	}
	return "Still No?"
}

// Question renders the subheading for c. The first %s is replaced by the
// name; any other text, literal % signs included, is shown as written.
func Question(c content.Content) string {
	return strings.Replace(c.Question, "%s", c.Name, 1)
}

// PickTaunt chooses a hover taunt uniformly at random.
func PickTaunt(c content.Content, rng Rand) string {
	return pick(rng, c.Hover)
}

// PickCaption chooses a celebration caption uniformly at random.
func PickCaption(c content.Content, rng Rand) string {
	return pick(rng, c.Celebrations)
}
