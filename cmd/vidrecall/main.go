package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/vidrecall/internal/archive"
	"codeberg.org/snonux/vidrecall/internal/cli"
	"codeberg.org/snonux/vidrecall/internal/logging"
	"codeberg.org/snonux/vidrecall/internal/models"
	"codeberg.org/snonux/vidrecall/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	serveCmd, _, err := rootCmd.Find([]string{"serve"})
	if err == nil {
		serveCmd.RunE = func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	flags.Resolve()

	if flags.Archive {
		if _, err := archive.ArchiveExports(flags.OutputDir); err != nil {
			return fmt.Errorf("failed to archive exports: %w", err)
		}
		return nil
	}

	if flags.ListModels {
		return models.NewLister(cli.GetOpenAIKey()).ListAvailableModels(cmd.Context())
	}

	logger, err := logging.New(logging.Options{Level: flags.LogLevel, Format: flags.LogFormat})
	if err != nil {
		return err
	}
	proc := processor.NewProcessor(flags, logger)

	switch {
	case flags.BatchFile != "":
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	case len(args) > 0:
		if err := proc.ProcessURL(args[0]); err != nil {
			return err
		}
	default:
		// No input provided - launch GUI mode by default
		return proc.RunGUIMode()
	}

	if flags.GenerateAnki {
		fmt.Printf("\nGenerating Anki import file...\n")
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		} else {
			fmt.Printf("Anki deck created: %s\n", outputPath)
		}
	}

	fmt.Printf("\nDone! Exports saved to: %s\n", flags.OutputDir)
	return nil
}

func runServe(cmd *cobra.Command, flags *cli.Flags) error {
	if err := cli.LoadEnvFile(flags.EnvFile); err != nil {
		return err
	}
	flags.Resolve()

	logger, err := logging.New(logging.Options{Level: flags.LogLevel, Format: flags.LogFormat})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return processor.NewProcessor(flags, logger).RunServer(ctx)
}
