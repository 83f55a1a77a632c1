package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/flashgen/internal/service/auth"
	"github.com/spf13/cobra"
)

var errAuthDisabled = errors.New("auth.jwt_secret is not configured")

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token signed with the configured secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAppConfig(cmd)
			if err != nil {
				return err
			}
			if !cfg.Auth.Enabled() {
				return errAuthDisabled
			}

			clientID := uuid.New()
			if raw, _ := cmd.Flags().GetString("client-id"); raw != "" {
				clientID, err = uuid.Parse(raw)
				if err != nil {
					return fmt.Errorf("invalid --client-id: %w", err)
				}
			}

			jwtService, err := auth.NewJWTService(cfg.Auth)
			if err != nil {
				return fmt.Errorf("failed to initialize JWT service: %w", err)
			}

			token, err := jwtService.GenerateToken(cmd.Context(), clientID)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().String("client-id", "", "Client UUID to embed (default: random)")
	return cmd
}
