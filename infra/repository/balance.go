package repository

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/amirasaad/bankseed/pkg/repository"
	"gorm.io/gorm"
)

type balanceRepository struct {
	table[account.Balance, Balance]
}

// NewBalanceRepository returns a balances repository bound to db.
func NewBalanceRepository(db *gorm.DB, batchSize int) repository.BalanceRepository {
	return &balanceRepository{
		table: newTable(db, batchSize, balanceToModel, balanceToDomain),
	}
}

// ListByAccount returns the account's balances, most recent first.
func (r *balanceRepository) ListByAccount(
	ctx context.Context,
	accountID uint,
) ([]*account.Balance, error) {
	return r.find(ctx, r.db.
		Where("checking_account_id = ?", accountID).
		Order(newestFirst))
}

func balanceToModel(b *account.Balance) *Balance {
	return &Balance{
		ID:                b.ID,
		CheckingAccountID: b.CheckingAccountID,
		Timestamp:         b.Timestamp,
		Amount:            b.Amount,
	}
}

func balanceToDomain(m *Balance) *account.Balance {
	return &account.Balance{
		ID:                m.ID,
		CheckingAccountID: m.CheckingAccountID,
		Timestamp:         m.Timestamp,
		Amount:            m.Amount,
	}
}
