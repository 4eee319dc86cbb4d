package gui

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/vidrecall/internal"
	"codeberg.org/snonux/vidrecall/internal/anki"
	"codeberg.org/snonux/vidrecall/internal/controller"
	"codeberg.org/snonux/vidrecall/internal/export"
)

// onExportDocument writes the shown summary as a document
func (a *Application) onExportDocument() {
	snap := a.ctl.Snapshot()
	renderer, err := export.NewRenderer(export.Options{
		Format:    a.config.ExportFormat,
		Dir:       export.VideoDir(a.config.OutputDir, snap.VideoID, snap.TranslatedLanguage),
		WrapWidth: a.config.WrapWidth,
		FontPath:  a.config.FontPath,
	})
	if err != nil {
		a.showError(err)
		return
	}

	path, err := a.ctl.Export(renderer)
	if err != nil {
		a.showError(fmt.Errorf("failed to export summary: %w", err))
		return
	}
	if path == "" {
		dialog.ShowInformation("Nothing to export", "Summarize a video first.", a.window)
		return
	}
	a.updateStatus("Saved summary to " + path)
}

// onExportDeck asks for a deck name and format and writes the flashcards
// as an Anki package or CSV file
func (a *Application) onExportDeck() {
	snap := a.ctl.Snapshot()
	if len(snap.Cards) == 0 {
		dialog.ShowInformation("No Cards", "Generate flashcards first.", a.window)
		return
	}

	formatOptions := []string{"APKG (Anki Package)", "CSV (Text only)"}
	formatSelect := widget.NewSelect(formatOptions, nil)
	formatSelect.SetSelected(formatOptions[0])

	deckNameEntry := widget.NewEntry()
	deckNameEntry.SetText(a.config.DeckName)

	selectedDir := filepath.Join(a.config.OutputDir, "decks")
	dirLabel := widget.NewLabel(selectedDir)
	dirButton := widget.NewButton("Browse...", func() {
		folderDialog := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil || dir == nil {
				return
			}
			selectedDir = dir.Path()
			dirLabel.SetText(selectedDir)
		}, a.window)

		if uri, err := storage.ParseURI("file://" + selectedDir); err == nil {
			if listableURI, ok := uri.(fyne.ListableURI); ok {
				folderDialog.SetLocation(listableURI)
			}
		}
		folderDialog.Show()
	})

	content := container.NewVBox(
		widget.NewLabel("Export Format:"),
		formatSelect,
		widget.NewSeparator(),
		widget.NewLabel("Deck Name:"),
		deckNameEntry,
		widget.NewSeparator(),
		widget.NewLabel("Export Directory:"),
		container.NewBorder(nil, nil, nil, dirButton, dirLabel),
		widget.NewLabel(fmt.Sprintf("%d cards from %s", len(snap.Cards), snap.VideoID)),
	)

	dialog.ShowCustomConfirm("Export to Anki", "Export", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		deckName := deckNameEntry.Text
		if deckName == "" {
			deckName = a.config.DeckName
		}
		path, err := writeDeck(snap, selectedDir, deckName, formatSelect.Selected == formatOptions[0])
		if err != nil {
			a.showError(err)
			return
		}
		a.updateStatus(fmt.Sprintf("Exported %d cards to %s", len(snap.Cards), path))
	}, a.window)
}

// writeDeck exports the snapshot's flashcards to dir and returns the file path
func writeDeck(snap controller.Snapshot, dir, deckName string, apkg bool) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	cards := anki.CardsFromDeck(snap.Cards, snap.Summary, snap.VideoID, snap.TranslatedLanguage)
	name := internal.SanitizeFilename(deckName)

	if apkg {
		outputPath := filepath.Join(dir, name+".apkg")
		gen := anki.NewGenerator(nil)
		gen.AddCards(cards)
		if err := gen.GenerateAPKG(outputPath, deckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
		return outputPath, nil
	}

	outputPath := filepath.Join(dir, name+".csv")
	gen := anki.NewGenerator(&anki.GeneratorOptions{OutputPath: outputPath, IncludeHeaders: true})
	gen.AddCards(cards)
	if err := gen.GenerateCSV(); err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}
	return outputPath, nil
}
