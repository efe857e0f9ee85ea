package initializer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/bankseed/infra"
	infra_lock "github.com/amirasaad/bankseed/infra/lock"
	infra_repository "github.com/amirasaad/bankseed/infra/repository"
	seedfixtures "github.com/amirasaad/bankseed/internal/fixtures/seed"
	"github.com/amirasaad/bankseed/pkg/app"
	"github.com/amirasaad/bankseed/pkg/config"
	"github.com/amirasaad/bankseed/pkg/lock"
	"github.com/amirasaad/bankseed/pkg/seed"
	"github.com/amirasaad/bankseed/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// InitializeDependencies wires the database, seed dataset, token generator
// and seed lock described by cfg. The returned cleanup closes every opened
// connection.
func InitializeDependencies(ctx context.Context, cfg *config.App) (*app.Deps, func() error, error) {
	return initialize(ctx, cfg, os.Stdout)
}

func initialize(ctx context.Context, cfg *config.App, out io.Writer) (
	deps *app.Deps,
	cleanup func() error,
	err error,
) {
	var closers []func() error
	closeAll := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}
	defer func() {
		if err != nil {
			_ = closeAll()
		}
	}()

	logger := setupLogger(cfg.Log, out)
	deps = &app.Deps{Logger: logger}

	deps.Dataset, err = seedfixtures.Load(cfg.Seed.Dataset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load seed dataset: %w", err)
	}
	logger.Info("Seed dataset loaded",
		"dataset", deps.Dataset.Name,
		"users", len(deps.Dataset.Users),
		"branches", len(deps.Dataset.Branches),
	)

	deps.Tokens, err = token.New(cfg.Token)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize token generator: %w", err)
	}

	if cfg.Seed.HashPasswords {
		deps.Hasher = seed.BcryptPassword(bcrypt.DefaultCost)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, sqlDB.Close)

	deps.Uow = infra_repository.NewUoW(db, cfg.Seed.BatchSize)
	deps.Schema = infra_repository.NewSchema(db)

	var locker lock.Locker
	if cfg.Redis != nil && cfg.Redis.URL != "" {
		redisLocker, err := infra_lock.NewWithRedis(
			ctx,
			cfg.Redis.URL,
			cfg.Redis.DialTimeout,
			cfg.Redis.LockRetry,
			logger,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Redis seed lock: %w", err)
		}
		closers = append(closers, redisLocker.Close)
		locker = redisLocker
	} else {
		locker = infra_lock.NewWithMemory()
	}
	deps.Locker = locker

	return deps, closeAll, nil
}
