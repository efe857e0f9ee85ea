// Package seed populates an empty bank database with fixed demo data.
//
// Every seeder checks whether its table already holds rows and does nothing
// if so; otherwise it builds the whole batch in memory and inserts it inside
// one transaction.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/bankseed/pkg/repository"
	"github.com/amirasaad/bankseed/pkg/token"
)

// Seeder runs the per-table seed steps against a UnitOfWork.
type Seeder struct {
	uow    repository.UnitOfWork
	tokens token.Generator
	data   *Dataset
	logger *slog.Logger
	now    func() time.Time
	hash   PasswordHasher
}

// Option customises a Seeder.
type Option func(*Seeder)

// WithClock sets the clock used to date balances and transactions.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

// WithPasswordHasher stores user passwords through h instead of verbatim.
func WithPasswordHasher(h PasswordHasher) Option {
	return func(s *Seeder) {
		s.hash = h
	}
}

// New creates a Seeder writing data through uow.
func New(
	uow repository.UnitOfWork,
	tokens token.Generator,
	data *Dataset,
	logger *slog.Logger,
	opts ...Option,
) *Seeder {
	s := &Seeder{
		uow:    uow,
		tokens: tokens,
		data:   data,
		logger: logger,
		now:    time.Now,
		hash:   PlainPassword,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step is one named seed operation.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Steps returns the seed steps in dependency order. Accounts need users and
// branches; balances and transactions need accounts.
func (s *Seeder) Steps() []Step {
	return []Step{
		{Name: "settings", Run: s.SeedSettings},
		{Name: "users", Run: s.SeedUsers},
		{Name: "branches", Run: s.SeedBranches},
		{Name: "accounts", Run: s.SeedAccounts},
		{Name: "balances", Run: s.SeedBalances},
		{Name: "transactions", Run: s.SeedTransactions},
	}
}

// Run executes every step in order and stops at the first failure. Steps
// that already committed stay committed.
func (s *Seeder) Run(ctx context.Context) error {
	for _, step := range s.Steps() {
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.Name, err)
		}
	}
	return nil
}

// emptyChecker is satisfied by every repository.Table.
type emptyChecker interface {
	Any(ctx context.Context) (bool, error)
}

// seedTable runs build inside one transaction unless the table chosen by
// table already holds rows. build returns how many rows it inserted.
func (s *Seeder) seedTable(
	ctx context.Context,
	name string,
	table func(uow repository.UnitOfWork) emptyChecker,
	build func(ctx context.Context, uow repository.UnitOfWork) (int, error),
) error {
	logger := s.logger.With("table", name)
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		found, err := table(uow).Any(ctx)
		if err != nil {
			return fmt.Errorf("check %s: %w", name, err)
		}
		if found {
			logger.Info("Skipping seed; table not empty")
			return nil
		}
		n, err := build(ctx, uow)
		if err != nil {
			return err
		}
		logger.Info("Seeded table", "rows", n)
		return nil
	})
}
