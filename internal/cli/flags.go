package cli

import (
	"time"

	"github.com/spf13/viper"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputDir    string
	Language     string
	BatchFile    string
	Flashcards   bool
	NoExport     bool
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
	Archive      bool
	ListModels   bool

	// Export flags
	ExportFormat string
	WrapWidth    float64
	FontPath     string

	// Gateway flags
	GatewayURL string
	Timeout    time.Duration

	// Logging flags
	LogLevel  string
	LogFormat string

	// serve flags
	Addr             string
	AllowedOrigins   []string
	EnvFile          string
	Completer        string
	ChunkSize        int
	SummaryModel     string
	GeminiModel      string
	TranslationModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:         "en",
		DeckName:         "Video Summaries",
		ExportFormat:     "pdf",
		GatewayURL:       "http://localhost:5002",
		Timeout:          120 * time.Second,
		LogLevel:         "info",
		LogFormat:        "console",
		Addr:             ":5002",
		AllowedOrigins:   []string{"*"},
		EnvFile:          ".env",
		Completer:        "openai",
		ChunkSize:        1000,
		SummaryModel:     "gpt-4o-mini",
		GeminiModel:      "gemini-2.0-flash",
		TranslationModel: "gpt-4o-mini",
	}
}

// Resolve copies the effective values (flag, environment, config file,
// default, in that order) from viper back into f.
func (f *Flags) Resolve() {
	f.OutputDir = viper.GetString("output.directory")
	f.Language = viper.GetString("language.default")
	f.ExportFormat = viper.GetString("export.format")
	f.WrapWidth = viper.GetFloat64("export.wrap_width")
	f.FontPath = viper.GetString("export.font_path")
	f.DeckName = viper.GetString("anki.deck_name")
	f.GatewayURL = viper.GetString("gateway.base_url")
	f.Timeout = viper.GetDuration("gateway.timeout")
	f.LogLevel = viper.GetString("log.level")
	f.LogFormat = viper.GetString("log.format")
	f.Addr = viper.GetString("server.addr")
	f.AllowedOrigins = viper.GetStringSlice("server.allowed_origins")
	f.Completer = viper.GetString("summary.completer")
	f.ChunkSize = viper.GetInt("summary.chunk_size")
	f.SummaryModel = viper.GetString("summary.openai_model")
	f.GeminiModel = viper.GetString("summary.gemini_model")
	f.TranslationModel = viper.GetString("translation.openai_model")
}
