package export

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const defaultTextWrap = 80 // columns

// TextRenderer writes a plain UTF-8 text document
type TextRenderer struct {
	dir       string
	wrapWidth float64
}

// NewTextRenderer creates a text renderer writing to dir
func NewTextRenderer(dir string, wrapWidth float64) *TextRenderer {
	if wrapWidth <= 0 {
		wrapWidth = defaultTextWrap
	}
	return &TextRenderer{dir: dir, wrapWidth: wrapWidth}
}

func (r *TextRenderer) WrapWidth() float64 { return r.wrapWidth }

func (r *TextRenderer) Ext() string { return FormatText }

// Render writes summary.txt: title, blank line, wrapped body
func (r *TextRenderer) Render(title, body string, wrapWidth float64) (string, error) {
	if wrapWidth <= 0 {
		wrapWidth = r.wrapWidth
	}
	path, err := outputPath(r.dir, r.Ext())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	for _, line := range Wrap(body, int(wrapWidth)) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write text export: %w", err)
	}
	return path, nil
}

// Wrap breaks text into lines of at most width runes at word boundaries.
// Words longer than width get a line of their own. Existing newlines are kept.
func Wrap(text string, width int) []string {
	if width <= 0 {
		width = defaultTextWrap
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}
