package repository

import "context"

// UnitOfWork defines the contract for transactional work and repository access.
//
// Repositories obtained from the UnitOfWork passed into Do share that
// transaction; repositories obtained outside Do run in autocommit mode.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	SettingRepository() SettingRepository
	UserRepository() UserRepository
	BranchRepository() BranchRepository
	AccountRepository() AccountRepository
	BalanceRepository() BalanceRepository
	TransactionRepository() TransactionRepository
}
