// Package flashcards splits a summary into sentence cards and keeps a
// wrapping cursor over them.
package flashcards

import "strings"

// terminators end a card. The Devanagari danda and the Braille full stop
// cover Hindi and Braille summaries.
var terminators = []string{".", "।", "⠲"}

// Split breaks text at each sentence terminator and drops segments that are
// empty or whitespace only. Surviving segments keep their inner whitespace.
func Split(text string) []string {
	segments := []string{text}
	for _, term := range terminators {
		var next []string
		for _, seg := range segments {
			next = append(next, strings.Split(seg, term)...)
		}
		segments = next
	}

	cards := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		cards = append(cards, seg)
	}
	return cards
}

// Deck is an ordered set of cards with a cursor. The zero value is an empty deck.
type Deck struct {
	source string
	cards  []string
	cursor int
}

// NewDeck builds a deck from text with the cursor on the first card
func NewDeck(text string) *Deck {
	return &Deck{source: text, cards: Split(text)}
}

// Len returns the number of cards
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cursor returns the index of the current card
func (d *Deck) Cursor() int {
	return d.cursor
}

// Current returns the card under the cursor; ok is false for an empty deck
func (d *Deck) Current() (string, bool) {
	if len(d.cards) == 0 {
		return "", false
	}
	return d.cards[d.cursor], true
}

// Next advances the cursor, wrapping from the last card to the first
func (d *Deck) Next() {
	if len(d.cards) == 0 {
		return
	}
	d.cursor = (d.cursor + 1) % len(d.cards)
}

// Prev moves the cursor back, wrapping from the first card to the last
func (d *Deck) Prev() {
	if len(d.cards) == 0 {
		return
	}
	d.cursor = (d.cursor - 1 + len(d.cards)) % len(d.cards)
}

// Cards returns a copy of the cards
func (d *Deck) Cards() []string {
	out := make([]string, len(d.cards))
	copy(out, d.cards)
	return out
}

// Source returns the text the deck was built from
func (d *Deck) Source() string {
	return d.source
}
