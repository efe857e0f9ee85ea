package app

import "context"

// TableCount is the number of rows in one seeded table.
type TableCount struct {
	Table string
	Rows  int64
}

// Summary counts the rows of every seeded table, in seeding order.
func (a *App) Summary(ctx context.Context) ([]TableCount, error) {
	uow := a.Deps.Uow
	counters := []struct {
		name  string
		count func(context.Context) (int64, error)
	}{
		{"settings", uow.SettingRepository().Count},
		{"users", uow.UserRepository().Count},
		{"branches", uow.BranchRepository().Count},
		{"checking_accounts", uow.AccountRepository().Count},
		{"balances", uow.BalanceRepository().Count},
		{"transactions", uow.TransactionRepository().Count},
	}

	result := make([]TableCount, 0, len(counters))
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, TableCount{Table: c.name, Rows: n})
	}
	return result, nil
}

// Setting returns the stored value of a setting.
func (a *App) Setting(ctx context.Context, key string) (string, error) {
	s, err := a.Deps.Uow.SettingRepository().GetByKey(ctx, key)
	if err != nil {
		return "", err
	}
	return s.Value, nil
}
