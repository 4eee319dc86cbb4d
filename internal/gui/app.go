package gui

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/vidrecall/internal"
	"codeberg.org/snonux/vidrecall/internal/controller"
	"codeberg.org/snonux/vidrecall/internal/gateway"
	"codeberg.org/snonux/vidrecall/internal/language"
	"codeberg.org/snonux/vidrecall/internal/logging"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// Input
	urlInput       *CustomEntry
	languageSelect *widget.Select
	submitButton   *ttwidget.Button
	activity       *widget.ProgressBarInfinite
	inputError     *widget.Label

	// Output
	videoLink      *widget.Hyperlink
	summaryHeading *widget.Label
	summaryLabel   *widget.Label
	cardPanel      *FlashcardPanel
	logViewer      *LogViewer
	statusLabel    *widget.Label

	// Actions
	flashcardsBtn *ttwidget.Button
	exportDocBtn  *ttwidget.Button
	exportDeckBtn *ttwidget.Button

	languages map[string]language.Code

	ctl    *controller.Controller
	config *Config
	logger *slog.Logger

	// Touched on the fyne goroutine only
	rendered uint64
	errShown bool
	last     controller.Snapshot
}

// Config holds GUI application configuration
type Config struct {
	Gateway      gateway.Gateway
	Logger       *slog.Logger
	Language     language.Code
	OutputDir    string
	ExportFormat string
	WrapWidth    float64
	FontPath     string
	DeckName     string
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Language:     language.Source,
		OutputDir:    filepath.Join(homeDir, ".local", "state", "vidrecall", "exports"),
		ExportFormat: "pdf",
		DeckName:     "Video Summaries",
	}
}

// New creates a new GUI application
func New(config *Config) *Application {
	defaults := DefaultConfig()
	if config == nil {
		config = defaults
	}
	if config.OutputDir == "" {
		config.OutputDir = defaults.OutputDir
	}
	if config.ExportFormat == "" {
		config.ExportFormat = defaults.ExportFormat
	}
	if config.DeckName == "" {
		config.DeckName = defaults.DeckName
	}
	if config.Language == "" {
		config.Language = language.Source
	}
	if config.Gateway == nil {
		config.Gateway = gateway.NewClient(gateway.DefaultBaseURL)
	}
	if config.Logger == nil {
		config.Logger = logging.Discard()
	}

	myApp := app.NewWithID("org.codeberg.snonux.vidrecall")
	myApp.SetIcon(GetAppIcon())

	a := &Application{
		app:       myApp,
		config:    config,
		logger:    config.Logger,
		languages: make(map[string]language.Code),
	}

	a.setupUI()

	// Controller diagnostics go to the activity panel
	ctlLogger, err := logging.New(logging.Options{Level: "info", Output: a.logViewer})
	if err != nil {
		ctlLogger = a.logger
	}
	a.ctl = controller.New(config.Gateway,
		controller.WithLogger(ctlLogger),
		controller.WithLanguage(config.Language),
		controller.WithListener(a.onSnapshot),
	)
	a.render(a.ctl.Snapshot())

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("vidrecall v%s", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(900, 760))

	a.urlInput = NewCustomEntry()
	a.urlInput.OnSubmitted = func(string) {
		a.onSubmit()
		a.window.Canvas().Unfocus()
	}
	a.urlInput.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	var names []string
	for _, code := range language.All() {
		name := code.DisplayName()
		a.languages[name] = code
		names = append(names, name)
	}
	a.languageSelect = widget.NewSelect(names, a.onLanguageSelected)
	a.languageSelect.Selected = a.config.Language.DisplayName()

	a.submitButton = ttwidget.NewButtonWithIcon("", theme.ConfirmIcon(), a.onSubmit)
	a.submitButton.Importance = widget.HighImportance

	a.activity = widget.NewProgressBarInfinite()
	a.activity.Stop()
	a.activity.Hide()

	a.inputError = widget.NewLabel("")
	a.inputError.Importance = widget.DangerImportance
	a.inputError.Hide()

	inputSection := container.NewVBox(
		container.NewBorder(nil, nil, nil,
			container.NewHBox(a.languageSelect, a.submitButton),
			a.urlInput,
		),
		a.inputError,
		a.activity,
	)

	a.videoLink = widget.NewHyperlink("", nil)
	a.videoLink.Hide()

	a.summaryHeading = widget.NewLabel("")
	a.summaryHeading.TextStyle = fyne.TextStyle{Bold: true}
	a.summaryLabel = widget.NewLabel("")
	a.summaryLabel.Wrapping = fyne.TextWrapWord
	summaryScroll := container.NewVScroll(a.summaryLabel)
	summaryScroll.SetMinSize(fyne.NewSize(0, 220))

	a.cardPanel = NewFlashcardPanel(a.onPrevCard, a.onNextCard)

	a.flashcardsBtn = ttwidget.NewButtonWithIcon("", theme.GridIcon(), a.onGenerateFlashcards)
	a.exportDocBtn = ttwidget.NewButtonWithIcon("", theme.DownloadIcon(), a.onExportDocument)
	a.exportDeckBtn = ttwidget.NewButtonWithIcon("", theme.UploadIcon(), a.onExportDeck)
	helpButton := ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	toolbar := container.NewHBox(
		a.flashcardsBtn,
		a.exportDocBtn,
		a.exportDeckBtn,
		layout.NewSpacer(),
		helpButton,
	)

	a.logViewer = NewLogViewer()
	a.statusLabel = widget.NewLabel("")
	a.statusLabel.TextStyle = fyne.TextStyle{Italic: true}

	mainSection := container.NewVSplit(
		container.NewBorder(
			container.NewVBox(a.videoLink, a.summaryHeading),
			nil, nil, nil,
			summaryScroll,
		),
		container.NewBorder(
			widget.NewSeparator(),
			nil, nil, nil,
			a.cardPanel,
		),
	)
	mainSection.SetOffset(0.6)

	content := container.NewBorder(
		container.NewVBox(inputSection, widget.NewSeparator(), toolbar),
		container.NewVBox(widget.NewSeparator(), a.logViewer, a.statusLabel),
		nil, nil,
		mainSection,
	)

	// Tooltips need the layer in place before they are set
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()
	helpButton.SetToolTip("Show hotkeys (h)")

	a.window.SetOnClosed(func() {
		if a.ctl != nil {
			a.ctl.Close()
		}
	})

	a.setupKeyboardShortcuts()
}

func (a *Application) setupTooltips() {
	a.submitButton.SetToolTip("Summarize video (Enter)")
	a.flashcardsBtn.SetToolTip("Generate flashcards (f)")
	a.exportDocBtn.SetToolTip("Download summary (d)")
	a.exportDeckBtn.SetToolTip("Export Anki deck (x)")
	a.cardPanel.SetTooltips()
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// onSnapshot runs on controller goroutines; rendering moves to the UI goroutine
func (a *Application) onSnapshot(snap controller.Snapshot) {
	fyne.Do(func() {
		a.render(snap)
	})
}

// render shows snap unless a newer snapshot is already on screen
func (a *Application) render(snap controller.Snapshot) {
	if snap.Version < a.rendered {
		return
	}
	a.rendered = snap.Version
	a.last = snap

	v := NewView(snap)

	a.window.SetTitle(fmt.Sprintf("%s - vidrecall v%s", v.Text.AppTitle, internal.Version))
	a.urlInput.SetPlaceHolder(v.Text.URLPlaceholder)
	a.submitButton.SetText(v.Text.Submit)
	if v.SubmitEnabled {
		a.submitButton.Enable()
	} else {
		a.submitButton.Disable()
	}
	if v.Busy {
		a.activity.Show()
		a.activity.Start()
	} else {
		a.activity.Stop()
		a.activity.Hide()
	}

	a.setVideoLink(v)
	a.summaryHeading.SetText(v.Text.SummaryHeading)
	a.summaryLabel.SetText(v.Body)
	a.statusLabel.SetText(v.Status)

	a.flashcardsBtn.SetText(v.Text.Flashcards)
	a.exportDocBtn.SetText(v.Text.DownloadSummary)
	a.exportDeckBtn.SetText(v.Text.ExportDeck)
	setEnabled(a.flashcardsBtn, v.FlashcardsEnabled)
	setEnabled(a.exportDocBtn, v.ExportEnabled)
	setEnabled(a.exportDeckBtn, len(snap.Cards) > 0)
	a.cardPanel.Update(v)

	a.showFailure(snap.Err)
}

func (a *Application) setVideoLink(v View) {
	if v.VideoURL == "" {
		a.videoLink.Hide()
		return
	}
	u, err := url.Parse(v.VideoURL)
	if err != nil {
		a.videoLink.Hide()
		return
	}
	a.videoLink.SetText(fmt.Sprintf("%s: %s", v.Text.Video, v.VideoURL))
	a.videoLink.SetURL(u)
	a.videoLink.Show()
}

// showFailure opens one dialog per failure; the flag resets once a
// snapshot without an error arrives
func (a *Application) showFailure(err error) {
	if err == nil {
		a.errShown = false
		return
	}
	if a.errShown {
		return
	}
	a.errShown = true
	dialog.ShowError(err, a.window)
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

// onSubmit handles URL submission
func (a *Application) onSubmit() {
	if a.last.Pending() {
		return
	}
	a.inputError.Hide()

	err := a.ctl.Submit(a.urlInput.Text)
	var validation *controller.ValidationError
	if errors.As(err, &validation) {
		a.inputError.SetText(fmt.Sprintf("%s: %s", language.Text(a.last.Language).InvalidURL, validation.Reason))
		a.inputError.Show()
		return
	}
	if err != nil {
		a.showError(err)
	}
}

func (a *Application) onLanguageSelected(name string) {
	code, ok := a.languages[name]
	if !ok || a.ctl == nil {
		return
	}
	if err := a.ctl.SetLanguage(code); err != nil {
		a.showError(err)
	}
}

func (a *Application) onGenerateFlashcards() {
	if err := a.ctl.GenerateFlashcards(); err != nil {
		a.showError(err)
	}
}

func (a *Application) onPrevCard() {
	a.ctl.PrevCard()
}

func (a *Application) onNextCard() {
	a.ctl.NextCard()
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	dialog.ShowError(err, a.window)
	a.updateStatus("Error: " + err.Error())
}
