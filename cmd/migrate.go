package cmd

import (
	"ledgerload/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the ledger tables and indexes when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			store, err := openStore(cmd.Context(), app, logger)
			if err != nil {
				return err
			}
			defer closeStore(store, logger)

			repo := repository.NewLedgerRepository(store, app.BatchSize)
			if err := repo.EnsureSchema(cmd.Context()); err != nil {
				logger.Errorw("failed to ensure schema", "error", err)
				return err
			}

			logger.Infow("schema ready")
			return nil
		},
	}
}
