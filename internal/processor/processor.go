package processor

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/vidrecall/internal"
	"codeberg.org/snonux/vidrecall/internal/anki"
	"codeberg.org/snonux/vidrecall/internal/batch"
	"codeberg.org/snonux/vidrecall/internal/cli"
	"codeberg.org/snonux/vidrecall/internal/controller"
	"codeberg.org/snonux/vidrecall/internal/export"
	"codeberg.org/snonux/vidrecall/internal/gateway"
	"codeberg.org/snonux/vidrecall/internal/gui"
	"codeberg.org/snonux/vidrecall/internal/language"
	"codeberg.org/snonux/vidrecall/internal/logging"
)

// Processor handles the headless summary workflow
type Processor struct {
	flags   *cli.Flags
	gateway gateway.Gateway
	logger  *slog.Logger
	deck    *anki.Generator
}

// NewProcessor creates a processor talking to the configured gateway
func NewProcessor(flags *cli.Flags, logger *slog.Logger) *Processor {
	gw := gateway.NewClient(flags.GatewayURL, gateway.WithTimeout(flags.Timeout))
	return NewProcessorWithGateway(flags, gw, logger)
}

// NewProcessorWithGateway creates a processor on top of an existing gateway
func NewProcessorWithGateway(flags *cli.Flags, gw gateway.Gateway, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Processor{
		flags:   flags,
		gateway: gw,
		logger:  logger,
		deck:    anki.NewGenerator(&anki.GeneratorOptions{IncludeHeaders: true}),
	}
}

// ProcessURL summarizes one video in the language from the flags
func (p *Processor) ProcessURL(url string) error {
	lang, err := language.Parse(p.flags.Language)
	if err != nil {
		return err
	}
	return p.ProcessURLWithLanguage(url, lang)
}

// ProcessURLWithLanguage summarizes one video, translated into lang
func (p *Processor) ProcessURLWithLanguage(url string, lang language.Code) error {
	ctl := controller.New(p.gateway, controller.WithLogger(p.logger), controller.WithLanguage(lang))
	defer ctl.Close()

	fmt.Printf("\nProcessing: %s\n", url)
	if err := ctl.Submit(url); err != nil {
		return fmt.Errorf("invalid input '%s': %w", url, err)
	}
	fmt.Printf("  Requesting summary from %s...\n", p.gatewayName())
	ctl.Wait()

	snap := ctl.Snapshot()
	if snap.State == controller.Failed && snap.Summary == "" {
		return fmt.Errorf("summary failed: %w", snap.Err)
	}

	fmt.Printf("  Video: %s\n", snap.EmbedURL)
	fmt.Printf("\n%s\n", snap.Summary)

	var translationErr *controller.TranslationFailure
	if errors.As(snap.Err, &translationErr) {
		return fmt.Errorf("translation failed: %w", snap.Err)
	}
	if !lang.IsSource() {
		fmt.Printf("\n[%s]\n%s\n", lang.EnglishName(), snap.Translated)
	}

	if p.flags.Flashcards || p.flags.GenerateAnki {
		if err := ctl.GenerateFlashcards(); err != nil {
			return fmt.Errorf("failed to generate flashcards: %w", err)
		}
		snap = ctl.Snapshot()
	}
	if p.flags.Flashcards {
		printFlashcards(snap.Cards)
	}
	if p.flags.GenerateAnki {
		p.deck.AddCards(anki.CardsFromDeck(snap.Cards, snap.Summary, snap.VideoID, snap.TranslatedLanguage))
	}

	if !p.flags.NoExport {
		path, err := p.export(ctl, snap)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("  Saved summary to: %s\n", path)
	}

	return nil
}

func (p *Processor) export(ctl *controller.Controller, snap controller.Snapshot) (string, error) {
	renderer, err := export.NewRenderer(export.Options{
		Format:    p.flags.ExportFormat,
		Dir:       export.VideoDir(p.flags.OutputDir, snap.VideoID, snap.TranslatedLanguage),
		WrapWidth: p.flags.WrapWidth,
		FontPath:  p.flags.FontPath,
	})
	if err != nil {
		return "", err
	}
	return ctl.Export(renderer)
}

func (p *Processor) gatewayName() string {
	if c, ok := p.gateway.(*gateway.Client); ok {
		return c.BaseURL()
	}
	return "gateway"
}

func printFlashcards(cards []string) {
	fmt.Printf("\nFlashcards (%d):\n", len(cards))
	for i, card := range cards {
		fmt.Printf("  %d/%d  %s\n", i+1, len(cards), strings.TrimSpace(card))
	}
}

// ProcessBatch processes every video listed in the batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	defaultLang, err := language.Parse(p.flags.Language)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		lang := entry.Language
		if lang == "" {
			lang = defaultLang
		}

		fmt.Printf("\n[%d/%d] line %d", i+1, len(entries), entry.Line)
		if err := p.ProcessURLWithLanguage(entry.URL, lang); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.URL, err)
			errorCount++
			continue
		}
		processedCount++
	}

	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total videos: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Failed: %d\n", errorCount)
	}
	fmt.Printf("================================\n")

	if processedCount == 0 && errorCount > 0 {
		return fmt.Errorf("all %d videos failed", errorCount)
	}
	return nil
}

// GenerateAnkiFile writes the flashcards collected so far and returns the
// output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	if len(p.deck.GetCards()) == 0 {
		return "", fmt.Errorf("no flashcards to export")
	}
	outputDir := filepath.Join(p.flags.OutputDir, "decks")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := internal.SanitizeFilename(p.flags.DeckName)
	var outputPath string
	if p.flags.AnkiCSV {
		outputPath = filepath.Join(outputDir, name+".csv")
		csvGen := anki.NewGenerator(&anki.GeneratorOptions{OutputPath: outputPath, IncludeHeaders: true})
		csvGen.AddCards(p.deck.GetCards())
		if err := csvGen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		outputPath = filepath.Join(outputDir, name+".apkg")
		if err := p.deck.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	total, withBack, videos := p.deck.Stats()
	fmt.Printf("  Generated %d cards from %d videos (%d with source text)\n", total, videos, withBack)

	return outputPath, nil
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode() error {
	lang, err := language.Parse(p.flags.Language)
	if err != nil {
		return err
	}

	app := gui.New(&gui.Config{
		Gateway:      p.gateway,
		Logger:       p.logger,
		Language:     lang,
		OutputDir:    p.flags.OutputDir,
		ExportFormat: p.flags.ExportFormat,
		WrapWidth:    p.flags.WrapWidth,
		FontPath:     p.flags.FontPath,
		DeckName:     p.flags.DeckName,
	})
	app.Run()

	return nil
}
