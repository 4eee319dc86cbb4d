package gui

import (
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/vidrecall/internal/controller"
	"codeberg.org/snonux/vidrecall/internal/gateway"
	"codeberg.org/snonux/vidrecall/internal/language"
)

func TestNewView(t *testing.T) {
	tests := []struct {
		name  string
		snap  controller.Snapshot
		check func(t *testing.T, v View)
	}{
		{
			name: "idle",
			snap: controller.Snapshot{State: controller.Idle, Language: language.Source},
			check: func(t *testing.T, v View) {
				if !v.SubmitEnabled || v.Busy {
					t.Error("submit should be enabled when idle")
				}
				if v.Body != language.Text(language.Source).SummaryPending {
					t.Errorf("Body = %q", v.Body)
				}
				if v.FlashcardsEnabled || v.ExportEnabled || v.Position != "" {
					t.Error("nothing to act on yet")
				}
			},
		},
		{
			name: "awaiting summary disables resubmit",
			snap: controller.Snapshot{
				State:      controller.AwaitingSummary,
				Processing: controller.ProcessingPending,
				Language:   language.Hindi,
				EmbedURL:   "https://www.youtube.com/embed/MS5UjNKw_1M",
			},
			check: func(t *testing.T, v View) {
				if v.SubmitEnabled || !v.Busy {
					t.Error("submit should be disabled while pending")
				}
				if v.Status != language.Text(language.Hindi).Processing {
					t.Errorf("Status = %q", v.Status)
				}
				if v.VideoURL == "" {
					t.Error("video link should show as soon as the ID is known")
				}
			},
		},
		{
			name: "ready with deck",
			snap: controller.Snapshot{
				State:      controller.Ready,
				Processing: controller.ProcessingSettled,
				Language:   language.Spanish,
				Summary:    "One. Two. Three.",
				Translated: "Uno. Dos. Tres.",
				Cards:      []string{"Uno", " Dos", " Tres"},
				Cursor:     1,
			},
			check: func(t *testing.T, v View) {
				if v.Body != "Uno. Dos. Tres." {
					t.Errorf("Body = %q", v.Body)
				}
				if v.Card != " Dos" || v.Position != "2 / 3" || !v.CardNavEnabled {
					t.Errorf("card = %q %q %v", v.Card, v.Position, v.CardNavEnabled)
				}
				if !v.FlashcardsEnabled || !v.ExportEnabled {
					t.Error("flashcards and export should be enabled")
				}
				if v.Text.Submit != language.Text(language.Spanish).Submit {
					t.Error("UI text not localized")
				}
			},
		},
		{
			name: "single card has no navigation",
			snap: controller.Snapshot{
				State:      controller.Ready,
				Translated: "Only one",
				Cards:      []string{"Only one"},
			},
			check: func(t *testing.T, v View) {
				if v.CardNavEnabled {
					t.Error("navigation should be disabled for one card")
				}
				if v.Position != "1 / 1" {
					t.Errorf("Position = %q", v.Position)
				}
			},
		},
		{
			name: "translation failure keeps summary",
			snap: controller.Snapshot{
				State:    controller.Failed,
				Language: language.French,
				Summary:  "English text.",
				Err:      &controller.TranslationFailure{Language: language.French, Err: errors.New("boom")},
			},
			check: func(t *testing.T, v View) {
				if v.Body != "English text." {
					t.Errorf("Body = %q", v.Body)
				}
				if v.Status != "Translation to French failed" {
					t.Errorf("Status = %q", v.Status)
				}
				if v.FlashcardsEnabled || v.ExportEnabled {
					t.Error("nothing translated to act on")
				}
			},
		},
		{
			name: "network failure",
			snap: controller.Snapshot{
				State: controller.Failed,
				Err:   &gateway.NetworkFailure{Op: "summarize", Err: errors.New("connection refused")},
			},
			check: func(t *testing.T, v View) {
				if !strings.Contains(v.Status, "summary service") {
					t.Errorf("Status = %q", v.Status)
				}
				if !v.SubmitEnabled {
					t.Error("submit should be enabled after failure")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewView(tt.snap))
		})
	}
}
