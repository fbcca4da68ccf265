// Package content holds the fixed lookup tables for the proposal view:
// phrases, celebration captions, mood image keys and their sources.
//
// The tables are static data. A YAML file can overlay any of them (see [Load]),
// but once loaded a Content value is treated as immutable.
package content

// Mood identifies a reaction image.
type Mood string

const (
	MoodShy         Mood = "shy"
	MoodSad1        Mood = "sad1"
	MoodSad2        Mood = "sad2"
	MoodAngry       Mood = "angry"
	MoodHappy       Mood = "happy" // defined but never selected
	MoodCelebration Mood = "celebration"
)

// Moods lists every mood in declaration order.
var Moods = []Mood{MoodShy, MoodSad1, MoodSad2, MoodAngry, MoodHappy, MoodCelebration}

// DefaultCelebrationSource is the remotely hosted celebration animation.
const DefaultCelebrationSource = "https://media2.giphy.com/media/v1.Y2lkPTc5MGI3NjExZjg2OHFuYjBpcmR1bnhta3R3eXlzbmluNXgzcWtkcmtncHd4YWZ1ciZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9Zw/XaikVL6qbrJSJoQmCR/giphy.gif"

// Content is the full set of text and image tables shown by the view.
type Content struct {
	Name       string // who is being asked
	Question   string // subheading template, %s is Name
	Signature  string
	Initial    string
	Persuasive []string
	Hover      []string
	// Celebrations are the congratulatory captions, one is picked on acceptance.
	Celebrations []string
	Happiest     string
	Credit       string
	// Sources maps each mood to the image it was authored for. Local moods are
	// site-relative paths, the celebration is a URL.
	Sources map[Mood]string
}

// Default returns the built-in tables. Each call returns fresh slices.
func Default() Content {
	return Content{
		Name:      "Disha",
		Question:  "%s, will you be mine?",
		Signature: "~ Secret Admirer",
		Initial:   "I have a really important question for you...",
		Persuasive: []string{
			"I promise I'll always be there for you.",
			"Think of all the adventures we could have!",
			"We'd be perfect together, don't you think?",
			"Okay, trying to make it a bit harder now!",
			"Are you *sure* sure?",
			"This is your final final chance! Please? 🥺",
		},
		Hover: []string{
			"Hey! Stop chasing me!",
			"Catch me if you can! 😉",
			"Don't you give up?",
			"You're persistent!",
			"Haha, almost!",
		},
		Celebrations: []string{
			"YESSSS!!! 🎉 You're amazing!",
			"This is the best day ever! 💖",
			"I knew you'd say yes! 😍",
			"Let's make wonderful memories together! 🌟",
		},
		Happiest: "You just made me the happiest person! 🥰",
		Credit:   "Crafted with love by your Secret Admirer",
		Sources: map[Mood]string{
			MoodShy:         "/cat-shy.gif",
			MoodSad1:        "/cat-sad1.gif",
			MoodSad2:        "/cat-sad2.gif",
			MoodAngry:       "/cat-angry.gif",
			MoodHappy:       "/cat-happy.gif",
			MoodCelebration: DefaultCelebrationSource,
		},
	}
}

// Source returns the image source for a mood, or "" if none is known.
func (c Content) Source(m Mood) string {
	return c.Sources[m]
}
