package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/budget/internal/integration/adapters"
)

func newTokenCommand(a *app) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API access token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.JWT.Secret == "" {
				return errors.New("JWT_SECRET is not set, the API does not require tokens")
			}

			token, err := adapters.NewTokenService(a.cfg.JWT.Secret).IssueAccessToken(cmd.Context(), subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "household", "Who the token is issued to.")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "How long the token stays valid.")
	return cmd
}
