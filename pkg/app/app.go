package app

import (
	"log/slog"
	"time"

	"github.com/amirasaad/bankseed/pkg/config"
	"github.com/amirasaad/bankseed/pkg/lock"
	"github.com/amirasaad/bankseed/pkg/repository"
	"github.com/amirasaad/bankseed/pkg/seed"
	"github.com/amirasaad/bankseed/pkg/token"
)

// Deps holds the infrastructure the seeder runs on.
type Deps struct {
	Uow     repository.UnitOfWork
	Schema  repository.Schema
	Tokens  token.Generator
	Locker  lock.Locker
	Dataset *seed.Dataset
	Logger  *slog.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Hasher defaults to storing passwords verbatim.
	Hasher seed.PasswordHasher
}

type App struct {
	Deps   *Deps
	Config *config.App
	Seeder *seed.Seeder
}

func New(deps *Deps, cfg *config.App) *App {
	var opts []seed.Option
	if deps.Clock != nil {
		opts = append(opts, seed.WithClock(deps.Clock))
	}
	if deps.Hasher != nil {
		opts = append(opts, seed.WithPasswordHasher(deps.Hasher))
	}
	return &App{
		Deps:   deps,
		Config: cfg,
		Seeder: seed.New(deps.Uow, deps.Tokens, deps.Dataset, deps.Logger, opts...),
	}
}
