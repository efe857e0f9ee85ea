package repository

import (
	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/amirasaad/bankseed/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	table[account.CheckingAccount, CheckingAccount]
}

// NewAccountRepository returns a checking accounts repository bound to db.
func NewAccountRepository(db *gorm.DB, batchSize int) repository.AccountRepository {
	return &accountRepository{
		table: newTable(db, batchSize, accountToModel, accountToDomain),
	}
}

func accountToModel(a *account.CheckingAccount) *CheckingAccount {
	m := &CheckingAccount{
		ID:       a.ID,
		Balance:  a.Balance,
		Token:    a.Token,
		UserID:   a.UserID,
		BranchID: a.BranchID,
	}
	if a.AccountNumber != "" {
		number := a.AccountNumber
		m.AccountNumber = &number
	}
	return m
}

func accountToDomain(m *CheckingAccount) *account.CheckingAccount {
	a := &account.CheckingAccount{
		ID:       m.ID,
		Balance:  m.Balance,
		Token:    m.Token,
		UserID:   m.UserID,
		BranchID: m.BranchID,
	}
	if m.AccountNumber != nil {
		a.AccountNumber = *m.AccountNumber
	}
	return a
}
