package controller

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"codeberg.org/snonux/vidrecall/internal/export"
	"codeberg.org/snonux/vidrecall/internal/flashcards"
	"codeberg.org/snonux/vidrecall/internal/gateway"
	"codeberg.org/snonux/vidrecall/internal/language"
	"codeberg.org/snonux/vidrecall/internal/logging"
	"codeberg.org/snonux/vidrecall/internal/videoid"
)

// Controller owns the state record. All mutation goes through its methods;
// gateway responses are applied from request goroutines under mu.
type Controller struct {
	gw     gateway.Gateway
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu             sync.Mutex
	rec            record
	seq            uint64
	summaryToken   uint64
	translateToken uint64
	listeners      []func(Snapshot)

	notifyMu sync.Mutex
	notified uint64
}

type record struct {
	version    uint64
	state      State
	processing Processing
	lang       language.Code

	source  string
	videoID string

	summary     string
	haveSummary bool
	translated  string
	transLang   language.Code

	deck *flashcards.Deck
	err  error
}

// Option customizes the controller
type Option func(*Controller)

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLanguage sets the initial language
func WithLanguage(code language.Code) Option {
	return func(c *Controller) {
		if parsed, err := language.Parse(string(code)); err == nil {
			c.rec.lang = parsed
		}
	}
}

// WithListener registers a change listener at construction time
func WithListener(fn func(Snapshot)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.listeners = append(c.listeners, fn)
		}
	}
}

// New creates an idle controller using gw for all network calls
func New(gw gateway.Gateway, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		gw:     gw,
		logger: logging.Discard(),
		ctx:    ctx,
		cancel: cancel,
		rec:    record{state: Idle, processing: ProcessingIdle, lang: language.Source},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers fn to receive a snapshot after every applied transition.
// Listeners run on request goroutines and must not call back into the
// controller's mutating methods synchronously.
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Submit validates source and, when it names a video, starts a new request
// chain. Any earlier chain is superseded and its results will be dropped.
// Invalid input returns a *ValidationError and leaves the state untouched.
func (c *Controller) Submit(source string) error {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return &ValidationError{Input: source, Reason: "input is empty"}
	}
	id, ok := videoid.Extract(trimmed)
	if !ok {
		return &ValidationError{Input: source, Reason: "no video identifier found"}
	}

	c.mu.Lock()
	c.seq++
	token := c.seq
	c.summaryToken = token
	c.translateToken = 0

	c.rec.source = trimmed
	c.rec.videoID = id
	c.rec.summary = ""
	c.rec.haveSummary = false
	c.rec.translated = ""
	c.rec.transLang = ""
	c.rec.deck = nil
	c.rec.err = nil
	c.rec.processing = ProcessingPending
	c.transitionLocked(AwaitingSummary)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Info("summary requested", "video_id", id, "token", token)
	c.emit(snap)

	c.spawn(func(ctx context.Context) {
		summary, err := c.gw.Summarize(ctx, trimmed)
		c.applySummary(token, summary, err)
	})
	return nil
}

// SetLanguage records the selected language. With a summary at hand the
// source language is applied locally; any other language starts exactly one
// translation and supersedes an in-flight one.
func (c *Controller) SetLanguage(code language.Code) error {
	code, err := language.Parse(string(code))
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.rec.lang = code
	if !c.rec.haveSummary || c.rec.state == AwaitingSummary {
		c.rec.version++
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return nil
	}

	if code.IsSource() {
		c.translateToken = 0
		c.rec.translated = c.rec.summary
		c.rec.transLang = code
		c.rec.err = nil
		c.rec.processing = ProcessingSettled
		c.transitionLocked(Ready)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return nil
	}

	token, summary := c.startTranslationLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap)
	c.spawnTranslation(token, summary, code)
	return nil
}

// GenerateFlashcards splits the translated text into a new deck with the
// cursor on the first card. Later translations do not rebuild the deck.
func (c *Controller) GenerateFlashcards() error {
	c.mu.Lock()
	if c.rec.translated == "" {
		c.mu.Unlock()
		return ErrNoSummary
	}
	c.rec.deck = flashcards.NewDeck(c.rec.translated)
	c.rec.version++
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("flashcards generated", "cards", len(snap.Cards))
	c.emit(snap)
	return nil
}

// NextCard advances the cursor, wrapping to the first card
func (c *Controller) NextCard() {
	c.moveCursor((*flashcards.Deck).Next)
}

// PrevCard moves the cursor back, wrapping to the last card
func (c *Controller) PrevCard() {
	c.moveCursor((*flashcards.Deck).Prev)
}

func (c *Controller) moveCursor(move func(*flashcards.Deck)) {
	c.mu.Lock()
	if c.rec.deck == nil || c.rec.deck.Len() == 0 {
		c.mu.Unlock()
		return
	}
	move(c.rec.deck)
	c.rec.version++
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// Export hands the translated text and its localized title to r.
// It returns "" and no error when there is nothing to export.
func (c *Controller) Export(r export.Renderer) (string, error) {
	c.mu.Lock()
	body, lang := c.rec.translated, c.rec.transLang
	c.mu.Unlock()

	if body == "" {
		return "", nil
	}
	path, err := r.Render(language.ExportTitle(lang), body, r.WrapWidth())
	if err != nil {
		return "", err
	}
	c.logger.Info("summary exported", "path", path, "language", lang)
	return path, nil
}

// Wait blocks until every request goroutine has finished
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight requests and drops their results
func (c *Controller) Close() {
	c.cancel()
	c.wg.Wait()
}

func (c *Controller) applySummary(token uint64, summary string, err error) {
	c.mu.Lock()
	if c.ctx.Err() != nil || token != c.summaryToken {
		c.mu.Unlock()
		c.logger.Debug("stale summary discarded", "token", token)
		return
	}
	c.summaryToken = 0

	if err != nil {
		c.rec.err = err
		c.rec.processing = ProcessingSettled
		c.transitionLocked(Failed)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.logger.Warn("summary failed", "video_id", snap.VideoID, "error", err)
		c.emit(snap)
		return
	}

	c.rec.summary = summary
	c.rec.haveSummary = true
	lang := c.rec.lang

	if lang.IsSource() {
		c.rec.translated = summary
		c.rec.transLang = lang
		c.rec.processing = ProcessingSettled
		c.transitionLocked(Ready)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return
	}

	tToken, text := c.startTranslationLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap)
	c.spawnTranslation(tToken, text, lang)
}

func (c *Controller) applyTranslation(token uint64, lang language.Code, translated string, err error) {
	c.mu.Lock()
	if c.ctx.Err() != nil || token != c.translateToken {
		c.mu.Unlock()
		c.logger.Debug("stale translation discarded", "token", token, "language", lang)
		return
	}
	c.translateToken = 0
	c.rec.processing = ProcessingSettled

	if err != nil {
		c.rec.err = &TranslationFailure{Language: lang, Err: err}
		c.transitionLocked(Failed)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.logger.Warn("translation failed", "language", lang, "error", err)
		c.emit(snap)
		return
	}

	c.rec.translated = translated
	c.rec.transLang = lang
	c.transitionLocked(Ready)
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// startTranslationLocked issues a new translation token for the current
// summary and moves to AwaitingTranslation
func (c *Controller) startTranslationLocked() (uint64, string) {
	c.seq++
	c.translateToken = c.seq
	c.rec.err = nil
	c.rec.processing = ProcessingPending
	c.transitionLocked(AwaitingTranslation)
	return c.translateToken, c.rec.summary
}

func (c *Controller) spawnTranslation(token uint64, text string, lang language.Code) {
	c.logger.Info("translation requested", "language", lang, "token", token)
	c.spawn(func(ctx context.Context) {
		translated, err := c.gw.Translate(ctx, text, lang)
		c.applyTranslation(token, lang, translated, err)
	})
}

func (c *Controller) spawn(fn func(ctx context.Context)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn(c.ctx)
	}()
}

func (c *Controller) transitionLocked(to State) {
	from := c.rec.state
	c.rec.state = to
	c.rec.version++
	c.logger.Debug("state transition", "from", from, "to", to, "processing", c.rec.processing)
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version:            c.rec.version,
		State:              c.rec.state,
		Processing:         c.rec.processing,
		Language:           c.rec.lang,
		Source:             c.rec.source,
		VideoID:            c.rec.videoID,
		Summary:            c.rec.summary,
		Translated:         c.rec.translated,
		TranslatedLanguage: c.rec.transLang,
		Err:                c.rec.err,
	}
	if c.rec.videoID != "" {
		snap.EmbedURL = videoid.EmbedURL(c.rec.videoID)
	}
	if c.rec.deck != nil {
		snap.Cards = c.rec.deck.Cards()
		snap.Cursor = c.rec.deck.Cursor()
		snap.DeckStale = c.rec.deck.Source() != c.rec.translated
	}
	return snap
}

// emit delivers snap to the listeners unless a newer snapshot already went out
func (c *Controller) emit(snap Snapshot) {
	c.mu.Lock()
	listeners := make([]func(Snapshot), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if snap.Version <= c.notified {
		return
	}
	c.notified = snap.Version
	for _, fn := range listeners {
		fn(snap)
	}
}
