package internal

import (
	"github.com/gosimple/slug"
)

// Version is the vidrecall release version
const Version = "0.3.0"

// SanitizeFilename creates a safe filename from a string.
// Falls back to "untitled" when nothing usable is left.
func SanitizeFilename(s string) string {
	name := slug.Make(s)
	if name == "" {
		return "untitled"
	}
	return name
}
