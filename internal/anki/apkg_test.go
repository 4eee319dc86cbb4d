package anki

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/vidrecall/internal/language"
)

func TestNewAPKGGenerator(t *testing.T) {
	gen := NewAPKGGenerator("Test Deck")
	if gen.deckName != "Test Deck" {
		t.Errorf("Expected deck name 'Test Deck', got '%s'", gen.deckName)
	}
	if len(gen.cards) != 0 {
		t.Errorf("Expected empty cards slice, got %d cards", len(gen.cards))
	}
	if gen.modelID == gen.deckID {
		t.Error("Model and deck IDs must differ")
	}

	if NewAPKGGenerator("").deckName == "" {
		t.Error("Expected a default deck name")
	}
}

func TestGenerateAPKG(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "deck.apkg")

	gen := NewGenerator(nil)
	gen.AddCards(CardsFromDeck([]string{"पहला वाक्य", " दूसरा वाक्य"}, "First sentence. Second sentence.", "MS5UjNKw_1M", language.Hindi))

	if err := gen.GenerateAPKG(outputPath, "Video Summaries"); err != nil {
		t.Fatalf("GenerateAPKG failed: %v", err)
	}

	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("Failed to open APKG as zip: %v", err)
	}
	defer reader.Close()

	files := make(map[string]*zip.File)
	for _, f := range reader.File {
		files[f.Name] = f
	}
	for _, name := range []string{"collection.anki2", "media"} {
		if files[name] == nil {
			t.Fatalf("APKG is missing %s", name)
		}
	}

	// Extract the collection and inspect it
	rc, err := files["collection.anki2"].Open()
	if err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(tmpDir, "collection.anki2")
	out, err := os.Create(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		t.Fatal(err)
	}
	rc.Close()
	out.Close()

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var notes, cards int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&notes); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&cards); err != nil {
		t.Fatal(err)
	}
	if notes != 2 || cards != 2 {
		t.Errorf("Expected 2 notes and 2 cards, got %d and %d", notes, cards)
	}

	var flds, tags, decks string
	if err := db.QueryRow("SELECT flds, tags FROM notes ORDER BY id LIMIT 1").Scan(&flds, &tags); err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(flds, fieldSeparator)
	if len(parts) != 3 || parts[0] != "पहला वाक्य" || parts[1] != "First sentence" {
		t.Errorf("Unexpected fields %q", parts)
	}
	if !strings.Contains(tags, "lang::hi") {
		t.Errorf("Unexpected tags %q", tags)
	}

	if err := db.QueryRow("SELECT decks FROM col").Scan(&decks); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(decks, "Video Summaries") {
		t.Errorf("Deck name missing from collection: %s", decks)
	}
}

func TestGenerateAPKG_InvalidPath(t *testing.T) {
	gen := NewAPKGGenerator("Deck")
	gen.AddCard(Card{Front: "x"})
	if err := gen.GenerateAPKG("/nonexistent/dir/deck.apkg"); err == nil {
		t.Error("Expected error for invalid output path")
	}
}
