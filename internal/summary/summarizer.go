package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"codeberg.org/snonux/vidrecall/internal/breaker"
	"codeberg.org/snonux/vidrecall/internal/logging"
)

// DefaultChunkSize is the number of runes summarized per model call
const DefaultChunkSize = 1000

const chunkPrompt = "Summarize the following part of a video transcript in a few complete sentences. " +
	"End every sentence with a period. Respond with only the summary.\n\n%s"

// ErrEmptyTranscript is returned when a video has nothing to summarize
var ErrEmptyTranscript = errors.New("transcript is empty")

// Transcriber turns a video URL into its transcript
type Transcriber interface {
	Transcribe(ctx context.Context, videoURL string) (string, error)
}

// Completer answers a single prompt
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Chunks cuts text into pieces of at most size runes
func Chunks(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// ChunkedSummarizer summarizes long text one chunk at a time
type ChunkedSummarizer struct {
	completer Completer
	chunkSize int
	breaker   *breaker.Breaker
}

// NewChunkedSummarizer creates a summarizer; b may be nil
func NewChunkedSummarizer(completer Completer, chunkSize int, b *breaker.Breaker) *ChunkedSummarizer {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ChunkedSummarizer{completer: completer, chunkSize: chunkSize, breaker: b}
}

// Summarize returns the chunk summaries joined by single spaces
func (s *ChunkedSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	chunks := Chunks(strings.TrimSpace(text), s.chunkSize)
	if len(chunks) == 0 {
		return "", ErrEmptyTranscript
	}

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		part, err := breaker.Do(s.breaker, func() (string, error) {
			return s.completer.Complete(ctx, fmt.Sprintf(chunkPrompt, chunk))
		})
		if err != nil {
			return "", fmt.Errorf("failed to summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " "), nil
}

// Pipeline transcribes a video and summarizes the transcript
type Pipeline struct {
	transcriber Transcriber
	summarizer  *ChunkedSummarizer
	breaker     *breaker.Breaker
	logger      *slog.Logger
}

// NewPipeline wires a transcriber to a summarizer. Transcription calls go
// through b when it is not nil.
func NewPipeline(transcriber Transcriber, summarizer *ChunkedSummarizer, b *breaker.Breaker, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Pipeline{transcriber: transcriber, summarizer: summarizer, breaker: b, logger: logger}
}

// Summarize returns the summary of the video at videoURL
func (p *Pipeline) Summarize(ctx context.Context, videoURL string) (string, error) {
	transcript, err := breaker.Do(p.breaker, func() (string, error) {
		return p.transcriber.Transcribe(ctx, videoURL)
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe video: %w", err)
	}
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyTranscript
	}
	p.logger.Debug("transcript received", "url", videoURL, "runes", len([]rune(transcript)))

	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return "", err
	}
	p.logger.Info("summary generated", "url", videoURL, "runes", len([]rune(summary)))
	return summary, nil
}
