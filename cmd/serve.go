package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"ledgerload/internal/cache"
	"ledgerload/internal/core"
	"ledgerload/internal/http/handler"
	"ledgerload/internal/http/handler/middleware"
	"ledgerload/internal/http/payload"
	"ledgerload/internal/http/server"
	"ledgerload/internal/repository"
	"ledgerload/pkg/jwt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const metricsPath = "/metrics"

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			store, err := openStore(ctx, app, logger)
			if err != nil {
				return err
			}
			defer closeStore(store, logger)

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			checkers := map[string]handler.HealthChecker{"postgres": store}

			var lookupCache core.Cache
			if app.RedisURL != "" {
				redisCache, err := cache.NewRedisCache(ctx, logger, app.RedisURL, app.CacheTTL)
				if err != nil {
					logger.Errorw("failed to connect to redis", "error", err)
					return err
				}
				defer redisCache.Close()
				lookupCache = redisCache
				checkers["redis"] = redisCache
			}

			repo := repository.NewLedgerRepository(store, app.BatchSize)
			lookup := core.NewLookupService(logger, repo, lookupCache, core.NewMetrics(registry))

			lookupHlr := handler.NewLookupHandler(logger, payload.Decoder{}, lookup)
			healthHlr := handler.NewHealthHandler(logger, checkers)

			// register routes
			mux := http.NewServeMux()
			lookupHlr.Register(mux)
			mux.HandleFunc(handler.Health, healthHlr.HandleHealth)
			mux.Handle("GET "+metricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

			// middleware
			var hdlr http.Handler = mux
			if app.JWTSecret != "" {
				jwtService := jwt.NewJWTService([]byte(app.JWTSecret))
				hdlr = middleware.NewAuthMiddleware(logger, jwtService, "/healthz", metricsPath).Auth(hdlr)
			} else {
				logger.Warnw("JWT_SECRET not set, lookup API is unauthenticated")
			}
			hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
			hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

			srv := server.NewHTTP(logger, hdlr, app.Port)
			errChan := srv.Run()

			var runErr error
			select {
			case <-ctx.Done():
			case runErr = <-errChan:
			}

			sdErr := srv.Shutdown()
			if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", runErr)
			}

			return sdErr
		},
	}
}
