package controller

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/vidrecall/internal/language"
)

// State is the controller's position in the request chain
type State int

const (
	Idle State = iota
	AwaitingSummary
	AwaitingTranslation
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingSummary:
		return "awaiting-summary"
	case AwaitingTranslation:
		return "awaiting-translation"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Processing tells the presentation layer whether a request chain is running
type Processing int

const (
	ProcessingIdle Processing = iota
	ProcessingPending
	ProcessingSettled
)

func (p Processing) String() string {
	switch p {
	case ProcessingIdle:
		return "idle"
	case ProcessingPending:
		return "pending"
	case ProcessingSettled:
		return "settled"
	default:
		return fmt.Sprintf("processing(%d)", int(p))
	}
}

// ErrNoSummary is returned when an action needs translated text that is not there yet
var ErrNoSummary = errors.New("no summary available")

// ValidationError reports input that does not name a video
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid video reference %q: %s", e.Input, e.Reason)
}

// TranslationFailure reports a failed translation; the summary is kept
type TranslationFailure struct {
	Language language.Code
	Err      error
}

func (e *TranslationFailure) Error() string {
	return fmt.Sprintf("translation to %s failed: %v", e.Language, e.Err)
}

func (e *TranslationFailure) Unwrap() error {
	return e.Err
}

// Snapshot is an immutable copy of the controller state
type Snapshot struct {
	Version    uint64
	State      State
	Processing Processing
	Language   language.Code

	Source   string
	VideoID  string
	EmbedURL string

	Summary string
	// Translated is the text shown to the user, in TranslatedLanguage
	Translated         string
	TranslatedLanguage language.Code

	Cards     []string
	Cursor    int
	DeckStale bool

	Err error
}

// Pending reports whether resubmission should be disabled
func (s Snapshot) Pending() bool {
	return s.Processing == ProcessingPending
}

// CanGenerateFlashcards reports whether GenerateFlashcards would succeed
func (s Snapshot) CanGenerateFlashcards() bool {
	return s.Translated != ""
}

// CurrentCard returns the card under the cursor
func (s Snapshot) CurrentCard() (string, bool) {
	if len(s.Cards) == 0 {
		return "", false
	}
	return s.Cards[s.Cursor], true
}
