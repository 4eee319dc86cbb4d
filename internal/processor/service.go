package processor

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/vidrecall/internal/breaker"
	"codeberg.org/snonux/vidrecall/internal/cli"
	"codeberg.org/snonux/vidrecall/internal/server"
	"codeberg.org/snonux/vidrecall/internal/summary"
	"codeberg.org/snonux/vidrecall/internal/translation"
)

// Completer backends for the chunk summarizer
const (
	CompleterOpenAI = "openai"
	CompleterGemini = "gemini"
)

// NewServer assembles the summarization service: Gemini transcription,
// chunked summaries, and cached translations routed between an LLM and the
// local Braille transliterator. Each upstream gets its own circuit breaker.
func (p *Processor) NewServer(ctx context.Context) (*server.Server, error) {
	openaiKey := cli.GetOpenAIKey()
	switch p.flags.Completer {
	case "", CompleterOpenAI:
		if openaiKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found; set OPENAI_API_KEY or use --completer gemini")
		}
	case CompleterGemini:
	default:
		return nil, fmt.Errorf("unsupported completer %q (supported: %s, %s)", p.flags.Completer, CompleterOpenAI, CompleterGemini)
	}

	gemini, err := summary.NewGeminiClient(ctx, cli.GetGeminiKey())
	if err != nil {
		return nil, err
	}

	var completer summary.Completer = summary.NewGeminiCompleter(gemini.Models, p.flags.GeminiModel)
	if p.flags.Completer != CompleterGemini {
		completer = summary.NewOpenAICompleter(openai.NewClient(openaiKey), p.flags.SummaryModel)
	}

	transcribeBreaker := breaker.New(breaker.Settings{Name: "transcribe", Logger: p.logger})
	completeBreaker := breaker.New(breaker.Settings{Name: "complete", Logger: p.logger})
	translateBreaker := breaker.New(breaker.Settings{Name: "translate", Logger: p.logger})

	pipeline := summary.NewPipeline(
		summary.NewGeminiTranscriber(gemini.Models, p.flags.GeminiModel),
		summary.NewChunkedSummarizer(completer, p.flags.ChunkSize, completeBreaker),
		transcribeBreaker,
		p.logger,
	)

	llm := p.newLLMTranslator(openaiKey, summary.NewGeminiCompleter(gemini.Models, p.flags.GeminiModel), translateBreaker)
	translator := translation.NewCachingTranslator(
		translation.NewRouter(llm, translation.NewBrailleTranslator()),
		translation.NewCache(),
	)

	return server.New(server.Config{
		Addr:           p.flags.Addr,
		AllowedOrigins: p.flags.AllowedOrigins,
	}, pipeline, translator, p.logger), nil
}

// newLLMTranslator uses OpenAI when a key is configured and falls back to
// the Gemini completer otherwise
func (p *Processor) newLLMTranslator(openaiKey string, gemini translation.Completer, b *breaker.Breaker) translation.Translator {
	if openaiKey == "" {
		p.logger.Info("no OpenAI API key; translating with Gemini", "model", p.flags.GeminiModel)
		return translation.NewCompleterTranslator(gemini, b)
	}
	return translation.NewOpenAITranslator(openaiKey,
		translation.WithModel(p.flags.TranslationModel),
		translation.WithBreaker(b),
	)
}

// RunServer serves until ctx is cancelled
func (p *Processor) RunServer(ctx context.Context) error {
	srv, err := p.NewServer(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Serving summaries on %s\n", p.flags.Addr)
	return srv.Run(ctx)
}
