package main

import (
	"fmt"

	"github.com/phrazzld/flashgen/internal/config"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "flashgen",
		Short:        "AI flashcard and study-plan generation service",
		Long:         "flashgen turns a worked example into related flashcards using Gemini, falling back to deterministic generation when the model is unavailable.",
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to a config file (default: ./config.yaml when present)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newTokenCmd())
	return cmd
}

// loadAppConfig loads the configuration named by --config, or the default
// sources when the flag is empty.
func loadAppConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
