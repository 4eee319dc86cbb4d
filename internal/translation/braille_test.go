package translation

import (
	"context"
	"testing"

	"codeberg.org/snonux/vidrecall/internal/flashcards"
	"codeberg.org/snonux/vidrecall/internal/language"
)

func TestToBraille(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hi.", "⠠⠓⠊⠲"},
		{"abc", "⠁⠃⠉"},
		{"Go 2024!", "⠠⠛⠕ ⠼⠃⠚⠃⠙⠖"},
		{"1a", "⠼⠁⠁"},
		{"yes, no?", "⠽⠑⠎⠂ ⠝⠕⠦"},
		{"don't", "⠙⠕⠝⠄⠞"},
		{"", ""},
		{"é", "é"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToBraille(tt.in); got != tt.want {
				t.Errorf("ToBraille(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBrailleTranslator_KeepsSentenceBoundaries(t *testing.T) {
	out, err := NewBrailleTranslator().Translate(context.Background(), "One. Two. Three.", language.Braille)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(flashcards.Split(out)); n != 3 {
		t.Errorf("Expected 3 flashcards from braille text, got %d (%q)", n, out)
	}
}
