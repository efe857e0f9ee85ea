package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirasaad/bankseed/pkg/domain"
	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/amirasaad/bankseed/pkg/repository"
)

// SeedAccounts gives every user one checking account at the first branch the
// storage layer returns, when the accounts table is empty.
//
// Which branch comes first is not defined when several exist. Users are
// processed in ID order. It fails with domain.ErrMissingDependency if there
// are no branches or no users yet.
func (s *Seeder) SeedAccounts(ctx context.Context) error {
	return s.seedTable(ctx, "accounts",
		func(uow repository.UnitOfWork) emptyChecker { return uow.AccountRepository() },
		func(ctx context.Context, uow repository.UnitOfWork) (int, error) {
			br, err := uow.BranchRepository().First(ctx)
			if errors.Is(err, domain.ErrNotFound) {
				return 0, fmt.Errorf("%w: no branch to hold the accounts", domain.ErrMissingDependency)
			}
			if err != nil {
				return 0, err
			}

			users, err := uow.UserRepository().List(ctx)
			if err != nil {
				return 0, err
			}
			if len(users) == 0 {
				return 0, fmt.Errorf("%w: no users to own the accounts", domain.ErrMissingDependency)
			}

			plan := s.data.Accounts
			owners := make(map[string]string, len(users))
			accounts := make([]*account.CheckingAccount, 0, len(users))
			for _, u := range users {
				acc := account.New(u.ID, br.ID)
				if plan.NumberSuffix != "" {
					number, err := account.NewAccountNumber(u.FirstName, plan.NumberSuffix)
					if err != nil {
						return 0, fmt.Errorf("user %q: %w", u.Login, err)
					}
					if other, taken := owners[number]; taken {
						return 0, fmt.Errorf(
							"%w: users %q and %q both map to %s",
							domain.ErrAccountNumberCollision, other, u.Login, number,
						)
					}
					owners[number] = u.Login
					acc.AccountNumber = number
				}
				if plan.StartingBalance != nil {
					acc.Balance = *plan.StartingBalance
				}
				if err := s.tokens.GenerateToken(acc); err != nil {
					return 0, fmt.Errorf("generate token for user %q: %w", u.Login, err)
				}
				accounts = append(accounts, acc)
			}

			s.logger.Debug("Accounts assigned to branch",
				"branch_id", br.ID,
				"branch_code", br.BranchCode,
				"accounts", len(accounts),
			)
			return len(accounts), uow.AccountRepository().CreateBatch(ctx, accounts)
		},
	)
}
