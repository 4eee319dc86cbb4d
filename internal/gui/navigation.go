package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// setupKeyboardShortcuts binds single-key shortcuts that apply while the
// URL field is not focused
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		if a.window.Canvas().Focused() == a.urlInput {
			return
		}

		switch r {
		case 'u', 'U':
			a.window.Canvas().Focus(a.urlInput)
		case 'f', 'F':
			if !a.flashcardsBtn.Disabled() {
				a.onGenerateFlashcards()
			}
		case 'd', 'D':
			if !a.exportDocBtn.Disabled() {
				a.onExportDocument()
			}
		case 'x', 'X':
			if !a.exportDeckBtn.Disabled() {
				a.onExportDeck()
			}
		case 'h', 'H':
			a.onShowHotkeys()
		case 'q', 'Q':
			a.window.Close()
		}
	})

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.window.Canvas().Unfocus()
			return
		}
		if a.window.Canvas().Focused() == a.urlInput {
			return
		}

		switch ev.Name {
		case fyne.KeyLeft:
			a.onPrevCard()
		case fyne.KeyRight:
			a.onNextCard()
		case fyne.KeyReturn, fyne.KeyEnter:
			if !a.submitButton.Disabled() {
				a.onSubmit()
			}
		}
	})
}

// onShowHotkeys shows the keyboard shortcuts dialog
func (a *Application) onShowHotkeys() {
	hotkeys := `## Input
**u** Focus URL field  
**Enter** Summarize video  
**Esc** Leave URL field  

## Flashcards
**f** Generate flashcards  
**←** Previous card  
**→** Next card  

## Export
**d** Download summary  
**x** Export Anki deck  

## Application
**h** Show hotkeys  
**q** Quit application`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(420, 380))

	dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window).Show()
}
