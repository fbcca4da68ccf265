package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overlay is the YAML shape of a content file. Every field is optional;
// missing fields keep their defaults.
type Overlay struct {
	Name              string   `yaml:"name"`
	Question          string   `yaml:"question"`
	Signature         string   `yaml:"signature"`
	Initial           string   `yaml:"initial"`
	Persuasive        []string `yaml:"persuasive"`
	Hover             []string `yaml:"hover"`
	Celebrations      []string `yaml:"celebrations"`
	Happiest          string   `yaml:"happiest"`
	Credit            string   `yaml:"credit"`
	CelebrationSource string   `yaml:"celebrationSource"`
}

// Load reads a YAML overlay from filePath and applies it on top of Default.
// An empty path returns the defaults.
func Load(filePath string) (Content, error) {
	if filePath == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse applies a YAML overlay document on top of Default and validates the result.
func Parse(data []byte) (Content, error) {
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Content{}, fmt.Errorf("failed to parse content YAML: %w", err)
	}
	c := o.Apply(Default())
	if err := Validate(c); err != nil {
		return Content{}, fmt.Errorf("invalid content: %w", err)
	}
	return c, nil
}

// Apply returns base with every non-empty overlay field substituted.
func (o Overlay) Apply(base Content) Content {
	setString(&base.Name, o.Name)
	setString(&base.Question, o.Question)
	setString(&base.Signature, o.Signature)
	setString(&base.Initial, o.Initial)
	setString(&base.Happiest, o.Happiest)
	setString(&base.Credit, o.Credit)
	if o.Persuasive != nil {
		base.Persuasive = o.Persuasive
	}
	if o.Hover != nil {
		base.Hover = o.Hover
	}
	if o.Celebrations != nil {
		base.Celebrations = o.Celebrations
	}
	if o.CelebrationSource != "" {
		base.Sources[MoodCelebration] = o.CelebrationSource
	}
	return base
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate checks that every lookup table is usable: all phrase lists are
// non-empty and contain no blank entries.
func Validate(c Content) error {
	if strings.TrimSpace(c.Initial) == "" {
		return fmt.Errorf("initial phrase cannot be empty")
	}
	lists := []struct {
		name  string
		items []string
	}{
		{"persuasive", c.Persuasive},
		{"hover", c.Hover},
		{"celebrations", c.Celebrations},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			return fmt.Errorf("%s cannot be empty", l.name)
		}
		for i, s := range l.items {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s[%d] cannot be blank", l.name, i)
			}
		}
	}
	if c.Sources[MoodCelebration] == "" {
		return fmt.Errorf("celebration source cannot be empty")
	}
	return nil
}
