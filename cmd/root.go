package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ledgerload/internal/config"
	"ledgerload/internal/db"
	"ledgerload/pkg/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "ledgerload"

// Execute runs the command named on the command line.
func Execute() error {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Load blockchain export shards into PostgreSQL and serve lookups over them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newIngestCmd(),
		newMigrateCmd(),
		newServeCmd(),
		newTokenCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return root.ExecuteContext(ctx)
}

// bootstrap loads configuration and builds the logger every command shares.
func bootstrap() (config.App, *zap.SugaredLogger, error) {
	app, err := config.NewApp()
	if err != nil {
		logger := log.NewZapLogger(serviceName, log.ParseLevel(""))
		logger.Errorw("failed to create config", "error", err)
		return config.App{}, nil, err
	}

	return app, log.NewZapLogger(serviceName, log.ParseLevel(app.LogLevel)), nil
}

func openStore(ctx context.Context, app config.App, logger *zap.SugaredLogger) (*db.PostgresDB, error) {
	store, err := db.NewPostgresDB(ctx, logger, app.DBConnectionURL, db.PoolConfig{
		MaxOpenConns: app.Workers + 2,
		MaxIdleConns: app.Workers,
	})
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return store, nil
}

func closeStore(store *db.PostgresDB, logger *zap.SugaredLogger) {
	if err := store.Close(); err != nil {
		logger.Warnw("failed to close database", "error", err)
	}
}

// ExitOnError prints err and exits non-zero when it is set.
func ExitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", serviceName, err)
		os.Exit(1)
	}
}
