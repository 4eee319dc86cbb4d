package cli

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Language", flags.Language, "en"},
		{"DeckName", flags.DeckName, "Video Summaries"},
		{"ExportFormat", flags.ExportFormat, "pdf"},
		{"GatewayURL", flags.GatewayURL, "http://localhost:5002"},
		{"Timeout", flags.Timeout, 120 * time.Second},
		{"LogLevel", flags.LogLevel, "info"},
		{"LogFormat", flags.LogFormat, "console"},
		{"Addr", flags.Addr, ":5002"},
		{"AllowedOrigins", flags.AllowedOrigins, []string{"*"}},
		{"EnvFile", flags.EnvFile, ".env"},
		{"Completer", flags.Completer, "openai"},
		{"ChunkSize", flags.ChunkSize, 1000},
		{"SummaryModel", flags.SummaryModel, "gpt-4o-mini"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.0-flash"},
		{"TranslationModel", flags.TranslationModel, "gpt-4o-mini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	boolTests := []struct {
		name  string
		value bool
	}{
		{"Flashcards", flags.Flashcards},
		{"NoExport", flags.NoExport},
		{"GenerateAnki", flags.GenerateAnki},
		{"AnkiCSV", flags.AnkiCSV},
		{"Archive", flags.Archive},
		{"ListModels", flags.ListModels},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OutputDir", flags.OutputDir},
		{"BatchFile", flags.BatchFile},
		{"FontPath", flags.FontPath},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := NewFlags()
	CreateRootCommand(flags)

	viper.Set("language.default", "fr")
	viper.Set("export.wrap_width", 150.5)
	viper.Set("gateway.timeout", "30s")
	viper.Set("server.allowed_origins", []string{"http://localhost:3000"})
	viper.Set("summary.chunk_size", 500)

	flags.Resolve()

	if flags.Language != "fr" {
		t.Errorf("Language = %q, want fr", flags.Language)
	}
	if flags.WrapWidth != 150.5 {
		t.Errorf("WrapWidth = %v, want 150.5", flags.WrapWidth)
	}
	if flags.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", flags.Timeout)
	}
	if !reflect.DeepEqual(flags.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Errorf("AllowedOrigins = %v", flags.AllowedOrigins)
	}
	if flags.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want 500", flags.ChunkSize)
	}
	// Unset keys fall back to the flag defaults
	if flags.OutputDir != DefaultOutputDir() {
		t.Errorf("OutputDir = %q, want %q", flags.OutputDir, DefaultOutputDir())
	}
	if flags.GatewayURL != "http://localhost:5002" {
		t.Errorf("GatewayURL = %q", flags.GatewayURL)
	}
}
