package processor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"codeberg.org/snonux/vidrecall/internal/cli"
	"codeberg.org/snonux/vidrecall/internal/language"
	"codeberg.org/snonux/vidrecall/internal/testutil"
	"codeberg.org/snonux/vidrecall/internal/translation"
)

func serviceProcessor(t *testing.T, completer string) *Processor {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := cli.NewFlags()
	flags.Completer = completer
	return NewProcessorWithGateway(flags, &testutil.FakeGateway{}, nil)
}

func TestNewServer_UnknownCompleter(t *testing.T) {
	p := serviceProcessor(t, "claude")

	_, err := p.NewServer(context.Background())
	if err == nil || !strings.Contains(err.Error(), `unsupported completer "claude"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewServer_MissingKeys(t *testing.T) {
	tests := []struct {
		name      string
		completer string
		openaiKey string
		geminiKey string
		wantErr   string
	}{
		{"openai completer without openai key", "openai", "", "g-key", "OpenAI API key not found"},
		{"no gemini key", "gemini", "", "", "Gemini API key not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tt.openaiKey)
			t.Setenv("GEMINI_API_KEY", tt.geminiKey)
			p := serviceProcessor(t, tt.completer)

			_, err := p.NewServer(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("GEMINI_API_KEY", "g-key")
	p := serviceProcessor(t, "gemini")

	srv, err := p.NewServer(context.Background())
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}

	// Braille never leaves the process
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/translate", strings.NewReader(`{"text":"Hi.","targetLanguage":"braille"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "⠠⠓⠊⠲") {
		t.Errorf("braille translate = %d %s", rec.Code, rec.Body.String())
	}
}

func TestNewLLMTranslator(t *testing.T) {
	p := serviceProcessor(t, "gemini")
	gemini := &testutil.MockCompleter{Responses: []string{"नमस्ते।"}}

	if _, ok := p.newLLMTranslator("o-key", gemini, nil).(*translation.OpenAITranslator); !ok {
		t.Error("expected the OpenAI translator when a key is set")
	}

	llm := p.newLLMTranslator("", gemini, nil)
	if _, ok := llm.(*translation.CompleterTranslator); !ok {
		t.Fatalf("expected the Gemini completer translator without an OpenAI key, got %T", llm)
	}
	got, err := llm.Translate(context.Background(), "Hello.", language.Hindi)
	if err != nil || got != "नमस्ते।" {
		t.Errorf("Translate() = %q, %v", got, err)
	}
}
