package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/vidrecall/internal/breaker"
	"codeberg.org/snonux/vidrecall/internal/language"
)

// DefaultModel is the OpenAI model used for translations
const DefaultModel = openai.GPT4oMini

const systemPrompt = "You are a translator. Respond with only the translated text, nothing else. Keep sentence boundaries intact."

// Translator translates text into a target language
type Translator interface {
	Translate(ctx context.Context, text string, target language.Code) (string, error)
}

// ChatClient is the part of the OpenAI client the translator needs
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAITranslator translates with an OpenAI chat model
type OpenAITranslator struct {
	apiKey  string
	model   string
	client  ChatClient
	breaker *breaker.Breaker
}

// OpenAIOption customizes the translator
type OpenAIOption func(*OpenAITranslator)

// WithModel overrides the chat model
func WithModel(model string) OpenAIOption {
	return func(t *OpenAITranslator) {
		if model != "" {
			t.model = model
		}
	}
}

// WithChatClient replaces the OpenAI client
func WithChatClient(client ChatClient) OpenAIOption {
	return func(t *OpenAITranslator) {
		if client != nil {
			t.client = client
		}
	}
}

// WithBreaker guards upstream calls with b
func WithBreaker(b *breaker.Breaker) OpenAIOption {
	return func(t *OpenAITranslator) {
		t.breaker = b
	}
}

// NewOpenAITranslator creates a new translator instance
func NewOpenAITranslator(apiKey string, opts ...OpenAIOption) *OpenAITranslator {
	t := &OpenAITranslator{
		apiKey: apiKey,
		model:  DefaultModel,
		client: openai.NewClient(apiKey),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate translates English text into target
func (t *OpenAITranslator) Translate(ctx context.Context, text string, target language.Code) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}
	if target.IsSource() {
		return text, nil
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(text, target),
			},
		},
		Temperature: 0.3,
	}

	resp, err := breaker.Do(t.breaker, func() (openai.ChatCompletionResponse, error) {
		return t.client.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func userPrompt(text string, target language.Code) string {
	return fmt.Sprintf("Translate the following English text to %s:\n\n%s", target.EnglishName(), text)
}

// Completer is a plain prompt-in, text-out model such as Gemini
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterTranslator translates through a text completion model
type CompleterTranslator struct {
	completer Completer
	breaker   *breaker.Breaker
}

// NewCompleterTranslator translates with c; b may be nil
func NewCompleterTranslator(c Completer, b *breaker.Breaker) *CompleterTranslator {
	return &CompleterTranslator{completer: c, breaker: b}
}

// Translate translates English text into target
func (t *CompleterTranslator) Translate(ctx context.Context, text string, target language.Code) (string, error) {
	if target.IsSource() {
		return text, nil
	}

	prompt := systemPrompt + "\n\n" + userPrompt(text, target)
	out, err := breaker.Do(t.breaker, func() (string, error) {
		return t.completer.Complete(ctx, prompt)
	})
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", target, err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return out, nil
}

// Router sends each language to the translator that handles it
type Router struct {
	llm     Translator
	braille Translator
}

// NewRouter routes Braille to braille and every other target to llm
func NewRouter(llm, braille Translator) *Router {
	return &Router{llm: llm, braille: braille}
}

// Translate passes source text through and dispatches everything else
func (r *Router) Translate(ctx context.Context, text string, target language.Code) (string, error) {
	switch {
	case target.IsSource():
		return text, nil
	case target == language.Braille:
		return r.braille.Translate(ctx, text, target)
	case r.llm == nil:
		return "", fmt.Errorf("no translator configured for %s", target)
	default:
		return r.llm.Translate(ctx, text, target)
	}
}
