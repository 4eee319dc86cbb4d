package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// FlashcardPanel shows the card under the cursor with prev/next buttons
type FlashcardPanel struct {
	widget.BaseWidget

	container     *fyne.Container
	cardLabel     *widget.Label
	positionLabel *widget.Label
	staleLabel    *widget.Label
	prevBtn       *ttwidget.Button
	nextBtn       *ttwidget.Button
}

// NewFlashcardPanel creates the panel; onPrev and onNext move the cursor
func NewFlashcardPanel(onPrev, onNext func()) *FlashcardPanel {
	p := &FlashcardPanel{}

	p.cardLabel = widget.NewLabel("")
	p.cardLabel.Wrapping = fyne.TextWrapWord
	p.cardLabel.Alignment = fyne.TextAlignCenter
	p.cardLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.positionLabel = widget.NewLabel("")
	p.positionLabel.Alignment = fyne.TextAlignCenter

	p.staleLabel = widget.NewLabel("Language changed since these cards were made")
	p.staleLabel.TextStyle = fyne.TextStyle{Italic: true}
	p.staleLabel.Hide()

	p.prevBtn = ttwidget.NewButtonWithIcon("", theme.NavigateBackIcon(), onPrev)
	p.nextBtn = ttwidget.NewButtonWithIcon("", theme.NavigateNextIcon(), onNext)

	p.container = container.NewBorder(
		nil,
		container.NewVBox(p.positionLabel, p.staleLabel),
		p.prevBtn,
		p.nextBtn,
		container.NewCenter(p.cardLabel),
	)

	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget
func (p *FlashcardPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.container)
}

// SetTooltips labels the navigation buttons; call after the tooltip layer exists
func (p *FlashcardPanel) SetTooltips() {
	p.prevBtn.SetToolTip("Previous card (←)")
	p.nextBtn.SetToolTip("Next card (→)")
}

// Update shows v's current card
func (p *FlashcardPanel) Update(v View) {
	if v.Position == "" {
		p.Clear()
		return
	}
	p.cardLabel.SetText(strings.TrimSpace(v.Card))
	p.positionLabel.SetText(v.Position)
	if v.DeckStale {
		p.staleLabel.Show()
	} else {
		p.staleLabel.Hide()
	}
	if v.CardNavEnabled {
		p.prevBtn.Enable()
		p.nextBtn.Enable()
	} else {
		p.prevBtn.Disable()
		p.nextBtn.Disable()
	}
}

// Clear empties the panel
func (p *FlashcardPanel) Clear() {
	p.cardLabel.SetText("")
	p.positionLabel.SetText("")
	p.staleLabel.Hide()
	p.prevBtn.Disable()
	p.nextBtn.Disable()
}
