package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ModelClient is the part of the OpenAI client the lister needs.
type ModelClient interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client ModelClient
	out    io.Writer
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		out:    os.Stdout,
	}
}

// NewListerWithClient creates a lister on top of an existing client,
// writing its report to out.
func NewListerWithClient(apiKey string, client ModelClient, out io.Writer) *Lister {
	if out == nil {
		out = os.Stdout
	}
	return &Lister{apiKey: apiKey, client: client, out: out}
}

// ChatModels returns the sorted IDs of chat-capable models.
func ChatModels(list openai.ModelsList) []string {
	var chat []string
	for _, model := range list.Models {
		if isChatModel(model.ID) {
			chat = append(chat, model.ID)
		}
	}
	sort.Strings(chat)
	return chat
}

func isChatModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "realtime", "transcribe", "search", "image", "embedding", "dall-e", "whisper"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.HasPrefix(id, "gpt-") || strings.HasPrefix(id, "o1") ||
		strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4") ||
		strings.Contains(id, "chat")
}

// ListAvailableModels prints the chat models usable for summarization and
// translation.
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .vidrecall.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chat := ChatModels(models)

	fmt.Fprintln(l.out, "Available OpenAI Models:")
	fmt.Fprintln(l.out, "\nChat Models (summary.openai_model, translation.openai_model):")
	if len(chat) == 0 {
		fmt.Fprintln(l.out, "  No chat models found")
		return nil
	}
	for _, model := range chat {
		marker := ""
		if model == openai.GPT4oMini {
			marker = " (default)"
		}
		fmt.Fprintf(l.out, "  %s%s\n", model, marker)
	}
	if skipped := len(models.Models) - len(chat); skipped > 0 {
		fmt.Fprintf(l.out, "  ... and %d non-chat models\n", skipped)
	}
	fmt.Fprintln(l.out, "\nGemini transcription uses summary.gemini_model and GEMINI_API_KEY.")

	return nil
}
