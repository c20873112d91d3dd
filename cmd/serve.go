package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	httpadapter "mesa-billing/internal/adapter/http"
	"mesa-billing/internal/adapter/auth"
	"mesa-billing/internal/adapter/usecase"
	"mesa-billing/internal/db"
)

var serveSeed bool

// serveCmd initializes the store, lock and use cases, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		decimal.MarshalJSONWithoutQuotes = true

		st, err := openStores(ctx)
		if err != nil {
			return err
		}
		defer st.close()

		if serveSeed {
			user, err := db.Seed(ctx, st.catalog, st.users, db.DefaultSeedOptions)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("demo data seeded", slog.String("user_id", user.ID), slog.String("email", user.Email))
		}

		locker, closeLocker, err := openLocker(ctx)
		if err != nil {
			return fmt.Errorf("lock backend: %w", err)
		}
		defer closeLocker()

		handler := httpadapter.NewHandler(
			newBillingUseCase(st.billing, locker),
			usecase.NewTrackerUseCase(st.catalog),
			usecase.NewAnalyticsUseCase(st.catalog),
			auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL),
			logger,
			cfg.HTTP.AllowedOrigins,
		)
		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:           handler.Router(),
			ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
			ReadTimeout:       cfg.HTTP.ReadTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening",
				slog.Int("port", int(cfg.HTTP.Port)),
				slog.String("env", cfg.Env),
				slog.String("store", cfg.Store.Driver),
				lockAttr(),
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err = <-errCh:
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout())
		defer cancelShutdown()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	},
}

func shutdownTimeout() time.Duration {
	if cfg.HTTP.ShutdownTimeout > 0 {
		return cfg.HTTP.ShutdownTimeout
	}
	return 5 * time.Second
}

func init() {
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "insert demo data before serving")
}
