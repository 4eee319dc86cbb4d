package gui

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/vidrecall/internal/controller"
	"codeberg.org/snonux/vidrecall/internal/gateway"
	"codeberg.org/snonux/vidrecall/internal/language"
)

// View is everything the window shows for one snapshot
type View struct {
	Text language.UIText

	SubmitEnabled bool
	Busy          bool
	Status        string

	VideoURL string
	Body     string

	Card              string
	Position          string
	CardNavEnabled    bool
	FlashcardsEnabled bool
	DeckStale         bool

	ExportEnabled bool
}

// NewView derives the widget state from snap
func NewView(snap controller.Snapshot) View {
	v := View{
		Text:              language.Text(snap.Language),
		SubmitEnabled:     !snap.Pending(),
		Busy:              snap.Pending(),
		VideoURL:          snap.EmbedURL,
		FlashcardsEnabled: snap.CanGenerateFlashcards(),
		ExportEnabled:     snap.Translated != "",
		DeckStale:         snap.DeckStale,
	}

	switch {
	case snap.Translated != "":
		v.Body = snap.Translated
	case snap.Summary != "":
		v.Body = snap.Summary
	default:
		v.Body = v.Text.SummaryPending
	}

	if snap.Pending() {
		v.Status = v.Text.Processing
	} else if snap.Err != nil {
		v.Status = errorMessage(snap.Err)
	}

	if card, ok := snap.CurrentCard(); ok {
		v.Card = card
		v.Position = fmt.Sprintf("%d / %d", snap.Cursor+1, len(snap.Cards))
		v.CardNavEnabled = len(snap.Cards) > 1
	}
	return v
}

// errorMessage is the short form shown in the status line
func errorMessage(err error) string {
	var tf *controller.TranslationFailure
	if errors.As(err, &tf) {
		return fmt.Sprintf("Translation to %s failed", tf.Language.EnglishName())
	}
	if gateway.IsNetworkFailure(err) {
		return "Could not reach the summary service"
	}
	return err.Error()
}
