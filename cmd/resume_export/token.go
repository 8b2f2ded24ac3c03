package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/spf13/cobra"
)

func newTokenCmd(root *rootOptions) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local testing",
		Long:  "Signs a token with JWT_SECRET that the export server will accept. Intended for development and smoke tests.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := root.load(cmd)
			if err != nil {
				return err
			}
			if err := cfg.JWT.Validate(); err != nil {
				return err
			}

			id := uuid.New()
			if userID != "" {
				id, err = uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid --user-id: %w", err)
				}
			}

			token, err := server.NewJWTService(&cfg.JWT).GenerateToken(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&userID, "user-id", "u", "", "User ID to embed (random when empty)")

	return cmd
}
