package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/vidrecall/internal"
	"codeberg.org/snonux/vidrecall/internal/export"
	"codeberg.org/snonux/vidrecall/internal/language"
)

// CreateRootCommand creates and configures the root cobra command along
// with its serve subcommand
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vidrecall [url]",
		Short: "Video summaries, translations and flashcards",
		Long: `vidrecall summarizes YouTube videos, translates the summary and turns
it into flashcards and printable documents.

Supported languages: ` + strings.Join(language.Strings(), ", ") + `

Examples:
  vidrecall                                          # Launch interactive GUI (default)
  vidrecall https://youtu.be/MS5UjNKw_1M -l hi       # Summarize and translate via CLI
  vidrecall --batch videos.txt --anki                # Process multiple videos from file
  vidrecall serve                                    # Run the summary service`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)
	rootCmd.AddCommand(CreateServeCommand(flags))

	return rootCmd
}

// CreateServeCommand creates the command that runs the HTTP service
func CreateServeCommand(flags *Flags) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the summarization and translation service",
		Long: `serve exposes POST /summary and POST /translate.

Summaries are produced by transcribing the video with Gemini and
summarizing the transcript in chunks. Translations go through OpenAI,
except Braille which is transliterated locally.`,
		Args: cobra.NoArgs,
	}

	setupServeFlags(serveCmd, flags)
	return serveCmd
}

// DefaultOutputDir is where exports land unless configured otherwise
func DefaultOutputDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "vidrecall", "exports")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.vidrecall.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: console or json")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", DefaultOutputDir(), "Output directory")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Summary language: "+strings.Join(language.Strings(), ", "))
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process videos from file (one URL per line, optionally 'URL = lang')")
	cmd.Flags().BoolVar(&flags.Flashcards, "flashcards", false, "Print the flashcards for each summary")
	cmd.Flags().BoolVar(&flags.NoExport, "no-export", false, "Skip writing the summary document")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the output directory to archive/exports-<timestamp> and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	// Export flags
	cmd.Flags().StringVarP(&flags.ExportFormat, "format", "f", flags.ExportFormat, "Export format: "+strings.Join(export.Formats(), ", "))
	cmd.Flags().Float64Var(&flags.WrapWidth, "wrap-width", 0, "Wrap width (millimetres for pdf, columns for txt; 0 uses the format default)")
	cmd.Flags().StringVar(&flags.FontPath, "font", "", "UTF-8 TrueType font for non-Latin PDF exports")

	// Gateway flags
	cmd.Flags().StringVar(&flags.GatewayURL, "gateway", flags.GatewayURL, "Base URL of the summary service")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout per gateway request")

	bindFlagsToViper(cmd)
}

func setupServeFlags(cmd *cobra.Command, flags *Flags) {
	cmd.Flags().StringVar(&flags.Addr, "addr", flags.Addr, "Listen address")
	cmd.Flags().StringSliceVar(&flags.AllowedOrigins, "allowed-origins", flags.AllowedOrigins, "CORS origins ('*' allows all)")
	cmd.Flags().StringVar(&flags.EnvFile, "env-file", flags.EnvFile, "Load API keys from this file when it exists")
	cmd.Flags().StringVar(&flags.Completer, "completer", flags.Completer, "Chunk summarizer backend: openai or gemini")
	cmd.Flags().IntVar(&flags.ChunkSize, "chunk-size", flags.ChunkSize, "Transcript chunk size in characters")
	cmd.Flags().StringVar(&flags.SummaryModel, "summary-model", flags.SummaryModel, "OpenAI model for chunk summaries")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for transcription and Gemini summaries")
	cmd.Flags().StringVar(&flags.TranslationModel, "translation-model", flags.TranslationModel, "OpenAI model for translations")

	bindServeFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	bindPFlags(map[string]*pflag.Flag{
		"log.level":         cmd.PersistentFlags().Lookup("log-level"),
		"log.format":        cmd.PersistentFlags().Lookup("log-format"),
		"output.directory":  cmd.Flags().Lookup("output"),
		"language.default":  cmd.Flags().Lookup("language"),
		"anki.deck_name":    cmd.Flags().Lookup("deck-name"),
		"export.format":     cmd.Flags().Lookup("format"),
		"export.wrap_width": cmd.Flags().Lookup("wrap-width"),
		"export.font_path":  cmd.Flags().Lookup("font"),
		"gateway.base_url":  cmd.Flags().Lookup("gateway"),
		"gateway.timeout":   cmd.Flags().Lookup("timeout"),
	})
}

func bindServeFlagsToViper(cmd *cobra.Command) {
	bindPFlags(map[string]*pflag.Flag{
		"server.addr":              cmd.Flags().Lookup("addr"),
		"server.allowed_origins":   cmd.Flags().Lookup("allowed-origins"),
		"summary.completer":        cmd.Flags().Lookup("completer"),
		"summary.chunk_size":       cmd.Flags().Lookup("chunk-size"),
		"summary.openai_model":     cmd.Flags().Lookup("summary-model"),
		"summary.gemini_model":     cmd.Flags().Lookup("gemini-model"),
		"translation.openai_model": cmd.Flags().Lookup("translation-model"),
	})
}

func bindPFlags(keys map[string]*pflag.Flag) {
	for key, flag := range keys {
		if flag == nil {
			continue
		}
		_ = viper.BindPFlag(key, flag)
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".vidrecall" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vidrecall")
	}

	// VIDRECALL_GATEWAY_BASE_URL overrides gateway.base_url
	viper.SetEnvPrefix("VIDRECALL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// LoadEnvFile loads KEY=value pairs from path into the environment.
// A missing file is not an error; variables already set win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini.api_key")
}
