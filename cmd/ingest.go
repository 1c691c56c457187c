package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ledgerload/internal/config"
	"ledgerload/internal/http/server"
	"ledgerload/internal/ingest"
	"ledgerload/internal/repository"
	"ledgerload/pkg/retry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type stage struct {
	kind ingest.Kind
	dir  string
}

func newIngestCmd() *cobra.Command {
	var metricsPort string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load transaction, trace and contract shards, in that order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			registry := prometheus.NewRegistry()
			if metricsPort != "" {
				mux := http.NewServeMux()
				mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
				srv := server.NewHTTP(logger, mux, metricsPort)
				srv.Run()
				defer func() {
					if err := srv.Shutdown(); err != nil {
						logger.Warnw("failed to stop metrics server", "error", err)
					}
				}()
			}

			return runIngest(cmd.Context(), app, logger, registry)
		},
	}

	cmd.Flags().StringVar(&metricsPort, "metrics-port", "", "serve prometheus metrics on this port while ingesting")
	return cmd
}

func runIngest(ctx context.Context, app config.App, logger *zap.SugaredLogger, registry prometheus.Registerer) error {
	store, err := openStore(ctx, app, logger)
	if err != nil {
		return err
	}
	defer closeStore(store, logger)

	repo := repository.NewLedgerRepository(store, app.BatchSize)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Errorw("failed to ensure schema", "error", err)
		return err
	}

	metrics := ingest.NewMetrics(registry)
	ingester := ingest.NewIngester(logger, repo, metrics, app.BatchSize, retry.Config{
		MaxRetries:    app.MaxRetries,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      10 * time.Second,
		Multiplier:    2,
		JitterEnabled: true,
	})
	coordinator := ingest.NewCoordinator(logger, metrics, app.Workers, app.Timeout)

	stages := []stage{
		{kind: ingest.KindTransactions, dir: app.TransactionsFolder},
		{kind: ingest.KindTraces, dir: app.TracesFolder},
		{kind: ingest.KindContracts, dir: app.ContractsFolder},
	}

	var errs []error
	for _, s := range stages {
		worker, err := ingester.Worker(s.kind)
		if err != nil {
			return err
		}

		report, err := coordinator.Run(ctx, s.kind, s.dir, worker)
		if err != nil {
			logger.Errorw("stage failed", "kind", s.kind, "dir", s.dir, "error", err)
			errs = append(errs, fmt.Errorf("%s stage: %w", s.kind, err))
			continue
		}

		if err := report.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s stage: %d of %d files failed: %w", s.kind, len(report.Failed), report.Files, err))
		}
	}

	return errors.Join(errs...)
}
