package language

import (
	"fmt"
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Code identifies a summary language
type Code string

const (
	// Source is the language summaries are produced in
	Source  Code = "en"
	Hindi   Code = "hi"
	Spanish Code = "es"
	French  Code = "fr"
	// Braille is English rendered as Unicode Braille cells
	Braille Code = "braille"
)

var all = []Code{Source, Hindi, Spanish, French, Braille}

// All returns every supported code, source language first
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// Parse converts user input into a supported Code
func Parse(s string) (Code, error) {
	c := Code(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range all {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q (supported: %s)", s, strings.Join(Strings(), ", "))
}

// Strings returns the supported codes as plain strings
func Strings() []string {
	out := make([]string, 0, len(all))
	for _, c := range all {
		out = append(out, string(c))
	}
	return out
}

// IsSource reports whether c is the language summaries are produced in
func (c Code) IsSource() bool {
	return c == Source
}

// Tag returns the BCP 47 tag for c. Braille maps to English.
func (c Code) Tag() xlanguage.Tag {
	if c == Braille {
		return xlanguage.English
	}
	return xlanguage.Make(string(c))
}

// DisplayName returns the language's name in that language ("हिन्दी", "Español", ...)
func (c Code) DisplayName() string {
	if c == Braille {
		return "Braille"
	}
	name := display.Self.Name(c.Tag())
	if name == "" {
		return string(c)
	}
	return name
}

// EnglishName returns the language's name in English, used in LLM prompts
func (c Code) EnglishName() string {
	if c == Braille {
		return "English Braille"
	}
	name := display.English.Tags().Name(c.Tag())
	if name == "" {
		return string(c)
	}
	return name
}

func (c Code) String() string {
	return string(c)
}
