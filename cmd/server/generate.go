package main

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/flashgen/internal/domain"
	"github.com/phrazzld/flashgen/internal/generation"
	"github.com/phrazzld/flashgen/internal/platform/logger"
	"github.com/spf13/cobra"
)

// generateOutput is what the generate command prints.
type generateOutput struct {
	Source     generation.Source   `json:"source"`
	Count      int                 `json:"count"`
	Flashcards domain.FlashcardSet `json:"flashcards"`
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate flashcards for one worked example and print them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			question, _ := cmd.Flags().GetString("question")
			answer, _ := cmd.Flags().GetString("answer")
			subject, _ := cmd.Flags().GetString("subject")
			difficulty, _ := cmd.Flags().GetString("difficulty")
			offline, _ := cmd.Flags().GetBool("offline")

			req, err := domain.NewFlashcardRequest(question, answer, subject, difficulty)
			if err != nil {
				return err
			}

			cfg, err := loadAppConfig(cmd)
			if err != nil {
				return err
			}

			// Logs go to stderr so stdout carries only the JSON result.
			log, err := logger.SetupWriter(cmd.ErrOrStderr(), cfg.Server)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}

			app, err := newApplication(cmd.Context(), cfg, log, offline)
			if err != nil {
				return err
			}

			outcome := app.service.GenerateFlashcards(cmd.Context(), req)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(generateOutput{
				Source:     outcome.Source,
				Count:      len(outcome.Value),
				Flashcards: outcome.Value,
			})
		},
	}

	cmd.Flags().String("question", "", "Worked-example question (required)")
	cmd.Flags().String("answer", "", "Worked-example answer (required)")
	cmd.Flags().String("subject", "", "Subject of the example (required)")
	cmd.Flags().String("difficulty", string(domain.DefaultDifficulty), "Requested difficulty")
	cmd.Flags().Bool("offline", false, "Skip the model and use deterministic generation")
	return cmd
}
