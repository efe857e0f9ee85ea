package repository

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// All repositories handed out inside Do share the same transaction session.
type UoW struct {
	db        *gorm.DB
	tx        *gorm.DB
	batchSize int
}

// NewUoW creates a new UoW for the given *gorm.DB. A non-positive batchSize
// selects DefaultBatchSize.
func NewUoW(db *gorm.DB, batchSize int) *UoW {
	return &UoW{
		db:        db,
		batchSize: batchSize,
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, batchSize: u.batchSize}
		return fn(txnUow)
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) SettingRepository() repository.SettingRepository {
	return NewSettingRepository(u.session(), u.batchSize)
}

func (u *UoW) UserRepository() repository.UserRepository {
	return NewUserRepository(u.session(), u.batchSize)
}

func (u *UoW) BranchRepository() repository.BranchRepository {
	return NewBranchRepository(u.session(), u.batchSize)
}

func (u *UoW) AccountRepository() repository.AccountRepository {
	return NewAccountRepository(u.session(), u.batchSize)
}

func (u *UoW) BalanceRepository() repository.BalanceRepository {
	return NewBalanceRepository(u.session(), u.batchSize)
}

func (u *UoW) TransactionRepository() repository.TransactionRepository {
	return NewTransactionRepository(u.session(), u.batchSize)
}
