package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/bankseed/pkg/config"
)

// ErrProductionSeed is returned when seeding is attempted with APP_ENV=production
// and SEED_ALLOW_PRODUCTION is not set.
var ErrProductionSeed = errors.New("refusing to recreate and seed a production database")

const (
	defaultLockKey  = "bankseed:lock"
	defaultLockTTL  = 2 * time.Minute
	defaultLockWait = 5 * time.Minute
)

// InitializeAndSeed recreates the schema and seeds settings, users, branches,
// accounts, balances and transactions, in that order. It returns a unchanged
// so startup can continue with it.
//
// Recreating drops every table and its data. With Seed.Recreate disabled the
// tables are only created when missing and each seeder skips tables that
// already hold rows. The first failing step aborts the run; steps that
// finished before it stay committed.
func InitializeAndSeed(ctx context.Context, a *App) (*App, error) {
	cfg := a.Config
	if cfg == nil {
		cfg = &config.App{}
	}
	logger := a.Deps.Logger.With("dataset", a.Deps.Dataset.Name)
	seedCfg := cfg.Seed
	if seedCfg == nil {
		seedCfg = &config.Seed{Recreate: true}
	}

	if cfg.IsProduction() && !seedCfg.AllowProduction {
		return a, ErrProductionSeed
	}

	key, ttl, wait := defaultLockKey, defaultLockTTL, defaultLockWait
	if cfg.Redis != nil {
		if cfg.Redis.LockKey != "" {
			key = cfg.Redis.LockKey
		}
		if cfg.Redis.LockTTL > 0 {
			ttl = cfg.Redis.LockTTL
		}
		if cfg.Redis.LockWaitTime > 0 {
			wait = cfg.Redis.LockWaitTime
		}
	}
	lockCtx, cancel := context.WithTimeout(ctx, wait)
	release, err := a.Deps.Locker.Acquire(lockCtx, key, ttl)
	cancel()
	if err != nil {
		return a, fmt.Errorf("failed to acquire seed lock %q: %w", key, err)
	}
	logger.Debug("Seed lock acquired", "key", key, "ttl", ttl)
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("Failed to release seed lock", "error", err)
		}
	}()

	start := time.Now()
	if seedCfg.Recreate {
		logger.Warn("Dropping all tables")
		if err := a.Deps.Schema.Drop(ctx); err != nil {
			return a, fmt.Errorf("failed to drop schema: %w", err)
		}
	}
	if err := a.Deps.Schema.Create(ctx); err != nil {
		return a, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("Seeding database")
	if err := a.Seeder.Run(ctx); err != nil {
		return a, err
	}
	logger.Info("Database seeding completed", "duration", time.Since(start))
	return a, nil
}
