package translation

import (
	"context"
	"strings"
	"unicode"

	"codeberg.org/snonux/vidrecall/internal/language"
)

const (
	brailleCapital = '⠠'
	brailleNumber  = '⠼'
)

// Grade 1 (uncontracted) English Braille
var brailleLetters = map[rune]rune{
	'a': '⠁', 'b': '⠃', 'c': '⠉', 'd': '⠙', 'e': '⠑',
	'f': '⠋', 'g': '⠛', 'h': '⠓', 'i': '⠊', 'j': '⠚',
	'k': '⠅', 'l': '⠇', 'm': '⠍', 'n': '⠝', 'o': '⠕',
	'p': '⠏', 'q': '⠟', 'r': '⠗', 's': '⠎', 't': '⠞',
	'u': '⠥', 'v': '⠧', 'w': '⠺', 'x': '⠭', 'y': '⠽',
	'z': '⠵',
}

// Digits reuse the cells of a to j behind the number sign
var brailleDigits = map[rune]rune{
	'1': '⠁', '2': '⠃', '3': '⠉', '4': '⠙', '5': '⠑',
	'6': '⠋', '7': '⠛', '8': '⠓', '9': '⠊', '0': '⠚',
}

var braillePunctuation = map[rune]rune{
	'.': '⠲', ',': '⠂', ';': '⠆', ':': '⠒', '!': '⠖',
	'?': '⠦', '\'': '⠄', '-': '⠤',
}

// BrailleTranslator transliterates English text into Unicode Braille cells
type BrailleTranslator struct{}

// NewBrailleTranslator creates a Braille transliterator
func NewBrailleTranslator() *BrailleTranslator {
	return &BrailleTranslator{}
}

// Translate ignores target and always produces Braille
func (BrailleTranslator) Translate(_ context.Context, text string, _ language.Code) (string, error) {
	return ToBraille(text), nil
}

// ToBraille transliterates text. Characters without a cell pass through.
func ToBraille(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 3)
	inNumber := false

	for _, r := range text {
		if cell, ok := brailleDigits[r]; ok {
			if !inNumber {
				sb.WriteRune(brailleNumber)
				inNumber = true
			}
			sb.WriteRune(cell)
			continue
		}
		inNumber = false

		lower := unicode.ToLower(r)
		if cell, ok := brailleLetters[lower]; ok {
			if r != lower {
				sb.WriteRune(brailleCapital)
			}
			sb.WriteRune(cell)
			continue
		}
		if cell, ok := braillePunctuation[r]; ok {
			sb.WriteRune(cell)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
