package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/vidrecall/internal/language"
)

// FakeGateway implements the summary/translation gateway for tests.
// Unset funcs return canned values. Safe for concurrent use.
type FakeGateway struct {
	SummaryFunc   func(ctx context.Context, sourceURL string) (string, error)
	TranslateFunc func(ctx context.Context, text string, target language.Code) (string, error)

	mu    sync.Mutex
	calls []string
}

// Summarize records the call and delegates to SummaryFunc
func (f *FakeGateway) Summarize(ctx context.Context, sourceURL string) (string, error) {
	f.record(fmt.Sprintf("summarize %s", sourceURL))
	if f.SummaryFunc != nil {
		return f.SummaryFunc(ctx, sourceURL)
	}
	return "mock summary of " + sourceURL, nil
}

// Translate records the call and delegates to TranslateFunc
func (f *FakeGateway) Translate(ctx context.Context, text string, target language.Code) (string, error) {
	f.record(fmt.Sprintf("translate %s %s", target, text))
	if f.TranslateFunc != nil {
		return f.TranslateFunc(ctx, text, target)
	}
	return fmt.Sprintf("[%s] %s", target, text), nil
}

// Calls returns the recorded calls in order
func (f *FakeGateway) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeGateway) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

// MockTranslator mocks translation service
type MockTranslator struct {
	Translations map[language.Code]string
	Errors       map[language.Code]error

	mu    sync.Mutex
	calls []string
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text string, target language.Code) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fmt.Sprintf("Translate: %s (->%s)", text, target))
	m.mu.Unlock()

	if err, ok := m.Errors[target]; ok {
		return "", err
	}

	if translation, ok := m.Translations[target]; ok {
		return translation, nil
	}

	return fmt.Sprintf("mock %s translation of %s", target, text), nil
}

// Calls returns the recorded calls in order
func (m *MockTranslator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// MockCompleter mocks a text completion backend
type MockCompleter struct {
	Responses []string
	Err       error

	mu      sync.Mutex
	prompts []string
}

// Complete returns the next canned response, repeating the last one
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "mock completion", nil
	}
	idx := len(m.prompts) - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}

// Prompts returns every prompt received
func (m *MockCompleter) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// MockTranscriber mocks video transcription
type MockTranscriber struct {
	Transcript string
	Err        error

	mu   sync.Mutex
	urls []string
}

// Transcribe returns the canned transcript
func (m *MockTranscriber) Transcribe(ctx context.Context, videoURL string) (string, error) {
	m.mu.Lock()
	m.urls = append(m.urls, videoURL)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	return m.Transcript, nil
}

// URLs returns every URL transcribed
func (m *MockTranscriber) URLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.urls))
	copy(out, m.urls)
	return out
}
