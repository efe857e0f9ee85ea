package seed

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/domain"
	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/amirasaad/bankseed/pkg/repository"
)

// SeedBalances writes one balance per configured amount for every account,
// dated today, yesterday and so on, when the balances table is empty.
func (s *Seeder) SeedBalances(ctx context.Context) error {
	return s.seedTable(ctx, "balances",
		func(uow repository.UnitOfWork) emptyChecker { return uow.BalanceRepository() },
		func(ctx context.Context, uow repository.UnitOfWork) (int, error) {
			accounts, err := uow.AccountRepository().List(ctx)
			if err != nil {
				return 0, err
			}
			today := domain.Day(s.now())
			balances := make([]*account.Balance, 0, len(accounts)*len(s.data.Balances))
			for _, acc := range accounts {
				for offset, amount := range s.data.Balances {
					balances = append(balances, &account.Balance{
						CheckingAccountID: acc.ID,
						Timestamp:         domain.DaysAgo(today, offset),
						Amount:            amount,
					})
				}
			}
			return len(balances), uow.BalanceRepository().CreateBatch(ctx, balances)
		},
	)
}

// SeedTransactions writes the configured transactions for every account,
// using the same day offsets as SeedBalances, when the transactions table is
// empty.
func (s *Seeder) SeedTransactions(ctx context.Context) error {
	return s.seedTable(ctx, "transactions",
		func(uow repository.UnitOfWork) emptyChecker { return uow.TransactionRepository() },
		func(ctx context.Context, uow repository.UnitOfWork) (int, error) {
			accounts, err := uow.AccountRepository().List(ctx)
			if err != nil {
				return 0, err
			}
			today := domain.Day(s.now())
			txs := make([]*account.Transaction, 0, len(accounts)*len(s.data.Transactions))
			for _, acc := range accounts {
				for offset, t := range s.data.Transactions {
					txs = append(txs, account.NewTransaction(
						acc.ID,
						domain.DaysAgo(today, offset),
						t.Amount,
						t.Type,
					))
				}
			}
			return len(txs), uow.TransactionRepository().CreateBatch(ctx, txs)
		},
	)
}
