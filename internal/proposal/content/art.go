package content

import (
	"embed"
	"strings"
)

//go:embed art/*.txt
var artFS embed.FS

// Art returns the terminal rendition of a mood image. Unknown moods get an
// empty string.
func Art(m Mood) string {
	data, err := artFS.ReadFile("art/" + string(m) + ".txt")
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(data), "\n")
}
