package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/vidrecall/internal/flashcards"
	"codeberg.org/snonux/vidrecall/internal/language"
	"codeberg.org/snonux/vidrecall/internal/videoid"
)

// Card represents a single Anki flashcard
type Card struct {
	Front    string        // Sentence in the selected language
	Back     string        // Matching source-language sentence, if known
	VideoID  string        // Video the summary belongs to
	Language language.Code // Language of Front
	Position int           // 1-based index within the deck
	Total    int           // Number of cards in the deck
}

// Source returns the playback URL of the card's video
func (c Card) Source() string {
	if c.VideoID == "" {
		return ""
	}
	return videoid.WatchURL(c.VideoID)
}

// Tags returns the space separated Anki tags of the card
func (c Card) Tags() string {
	tags := []string{"vidrecall"}
	if c.Language != "" {
		tags = append(tags, "lang::"+string(c.Language))
	}
	if c.VideoID != "" {
		tags = append(tags, "video::"+c.VideoID)
	}
	return strings.Join(tags, " ")
}

// CardsFromDeck turns flashcard segments into Anki cards. When the source
// summary splits into the same number of sentences, each card carries its
// source sentence on the back.
func CardsFromDeck(cards []string, sourceText, videoID string, lang language.Code) []Card {
	var source []string
	if !lang.IsSource() && sourceText != "" {
		if split := flashcards.Split(sourceText); len(split) == len(cards) {
			source = split
		}
	}

	out := make([]Card, 0, len(cards))
	for i, text := range cards {
		card := Card{
			Front:    strings.TrimSpace(text),
			VideoID:  videoID,
			Language: lang,
			Position: i + 1,
			Total:    len(cards),
		}
		if source != nil {
			card.Back = strings.TrimSpace(source[i])
		}
		out = append(out, card)
	}
	return out
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddCards adds several cards in order
func (g *Generator) AddCards(cards []Card) {
	g.cards = append(g.cards, cards...)
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		headers := []string{"Front", "Back", "Source", "Tags"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Front,
			card.Back,
			card.Source(),
			card.Tags(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}
	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withBack, videos int) {
	totalCards = len(g.cards)
	seen := make(map[string]bool)

	for _, card := range g.cards {
		if card.Back != "" {
			withBack++
		}
		if card.VideoID != "" && !seen[card.VideoID] {
			seen[card.VideoID] = true
			videos++
		}
	}

	return
}
