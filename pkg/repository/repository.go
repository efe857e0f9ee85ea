package repository

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/amirasaad/bankseed/pkg/domain/branch"
	"github.com/amirasaad/bankseed/pkg/domain/setting"
	"github.com/amirasaad/bankseed/pkg/domain/user"
)

// Table is the set of operations every seeded table supports.
type Table[T any] interface {
	// Any reports whether the table holds at least one row.
	Any(ctx context.Context) (bool, error)
	Count(ctx context.Context) (int64, error)
	// CreateBatch inserts all items as one batch and assigns their IDs.
	CreateBatch(ctx context.Context, items []*T) error
	// List returns every row ordered by ID.
	List(ctx context.Context) ([]*T, error)
}

type SettingRepository interface {
	Table[setting.Setting]
	GetByKey(ctx context.Context, key string) (*setting.Setting, error)
}

type UserRepository interface {
	Table[user.User]
	GetByLogin(ctx context.Context, login string) (*user.User, error)
}

type BranchRepository interface {
	Table[branch.Branch]
	// First returns whichever branch the storage layer yields first. No
	// ordering is applied, so the choice is arbitrary when several exist.
	First(ctx context.Context) (*branch.Branch, error)
}

type AccountRepository interface {
	Table[account.CheckingAccount]
}

type BalanceRepository interface {
	Table[account.Balance]
	ListByAccount(ctx context.Context, accountID uint) ([]*account.Balance, error)
}

type TransactionRepository interface {
	Table[account.Transaction]
	ListByAccount(ctx context.Context, accountID uint) ([]*account.Transaction, error)
}

// Schema creates and destroys the tables backing the repositories.
type Schema interface {
	// Drop removes every table and its data.
	Drop(ctx context.Context) error
	// Create creates missing tables, columns and indexes.
	Create(ctx context.Context) error
}
