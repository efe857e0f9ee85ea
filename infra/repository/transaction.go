package repository

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/amirasaad/bankseed/pkg/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	table[account.Transaction, Transaction]
}

// NewTransactionRepository returns a transactions repository bound to db.
func NewTransactionRepository(db *gorm.DB, batchSize int) repository.TransactionRepository {
	return &transactionRepository{
		table: newTable(db, batchSize, transactionToModel, transactionToDomain),
	}
}

// ListByAccount returns the account's transactions, most recent first.
func (r *transactionRepository) ListByAccount(
	ctx context.Context,
	accountID uint,
) ([]*account.Transaction, error) {
	return r.find(ctx, r.db.
		Where("checking_account_id = ?", accountID).
		Order(newestFirst).
		Order("id"))
}

func transactionToModel(t *account.Transaction) *Transaction {
	return &Transaction{
		ID:                t.ID,
		CheckingAccountID: t.CheckingAccountID,
		Timestamp:         t.Timestamp,
		Amount:            t.Amount,
		TransactionType:   t.Type.String(),
	}
}

// transactionToDomain keeps the stored type as-is; rows are only written by
// this package, so the value is always one of the known types.
func transactionToDomain(m *Transaction) *account.Transaction {
	return &account.Transaction{
		ID:                m.ID,
		CheckingAccountID: m.CheckingAccountID,
		Timestamp:         m.Timestamp,
		Amount:            m.Amount,
		Type:              account.TransactionType(m.TransactionType),
	}
}
