package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mesa-billing/internal/adapter/lock"
	"mesa-billing/internal/adapter/memory"
	"mesa-billing/internal/adapter/postgres"
	"mesa-billing/internal/adapter/usecase"
	"mesa-billing/internal/config/configs"
	"mesa-billing/internal/core/port"
	"mesa-billing/internal/db"
)

// stores bundles the repositories of the configured driver.
type stores struct {
	billing port.BillingRepository
	catalog port.CatalogRepository
	users   port.UserRepository
	close   func()
}

func openStores(ctx context.Context) (*stores, error) {
	if cfg.Store.Driver == configs.StoreDriverMemory {
		logger.Warn("using in-memory store; data is lost on exit")
		m := memory.NewStore()
		return &stores{billing: m, catalog: m, users: m, close: func() {}}, nil
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return &stores{
		billing: postgres.NewBillingRepository(pool),
		catalog: postgres.NewCatalogRepository(pool),
		users:   postgres.NewUserRepository(pool),
		close:   pool.Close,
	}, nil
}

// openLocker builds the account lock for the configured backend.
func openLocker(ctx context.Context) (port.AccountLocker, func(), error) {
	switch backend := cfg.Lock.Normalized(); backend {
	case configs.LockBackendRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return lock.NewRedisLocker(client, cfg.Lock.TTL, cfg.Lock.Wait), func() { _ = client.Close() }, nil
	case configs.LockBackendPostgres:
		sqlDB, err := db.OpenSQL(cfg.Psql.Addr.String())
		if err != nil {
			return nil, nil, err
		}
		return lock.NewAdvisoryLocker(sqlDB, cfg.Lock.Wait), func() { _ = sqlDB.Close() }, nil
	default:
		return lock.NewKeyedLocker(cfg.Lock.Wait), func() {}, nil
	}
}

func newBillingUseCase(repo port.BillingRepository, locker port.AccountLocker) *usecase.BillingUseCase {
	return usecase.NewBillingUseCase(repo, locker, logger,
		usecase.WithDefaultThreshold(cfg.Billing.DefaultThreshold),
		usecase.WithMaxRetries(cfg.Billing.MaxRetries),
	)
}

func commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, time.Minute)
}

func lockAttr() slog.Attr {
	return slog.String("lock_backend", cfg.Lock.Normalized())
}
