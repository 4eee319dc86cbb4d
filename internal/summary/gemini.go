package summary

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	// DefaultGeminiModel is used for transcription and Gemini completions
	DefaultGeminiModel = "gemini-2.0-flash"

	transcribePrompt = "Transcribe the spoken content of this video as plain text. " +
		"Respond with only the transcript, without timestamps or speaker labels."
)

// ContentGenerator is the part of the Gemini client used here
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewGeminiClient creates a Gemini API client
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// GeminiTranscriber asks Gemini to transcribe a YouTube video from its URL
type GeminiTranscriber struct {
	models ContentGenerator
	model  string
}

// NewGeminiTranscriber creates a transcriber; pass client.Models as models
func NewGeminiTranscriber(models ContentGenerator, model string) *GeminiTranscriber {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiTranscriber{models: models, model: model}
}

// Transcribe returns the spoken text of the video at videoURL
func (t *GeminiTranscriber) Transcribe(ctx context.Context, videoURL string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(videoURL, "video/mp4"),
			genai.NewPartFromText(transcribePrompt),
		}, genai.RoleUser),
	}

	resp, err := t.models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// GeminiCompleter completes prompts with a Gemini model
type GeminiCompleter struct {
	models ContentGenerator
	model  string
}

// NewGeminiCompleter creates a completer; pass client.Models as models
func NewGeminiCompleter(models ContentGenerator, model string) *GeminiCompleter {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiCompleter{models: models, model: model}
}

// Complete returns the model's answer to prompt
func (c *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no completion returned")
	}
	return text, nil
}
