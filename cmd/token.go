package cmd

import (
	"errors"
	"fmt"
	"time"

	"ledgerload/internal/config"
	"ledgerload/pkg/jwt"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Print a signed bearer token for the lookup API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := config.JWTSecret()
			if err != nil {
				return err
			}
			if secret == "" {
				return errors.New("JWT_SECRET is not set")
			}

			token, err := jwt.NewJWTService([]byte(secret)).Issue(args[0], ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
