package account

import (
	"fmt"
	"time"

	"github.com/amirasaad/bankseed/pkg/domain"
	"github.com/shopspring/decimal"
)

// TransactionType enumerates the kinds of account movement.
type TransactionType string

// Transaction type constants.
const (
	TransactionTypeDeposit  TransactionType = "Deposit"
	TransactionTypeWithdraw TransactionType = "Withdraw"
	TransactionTypePayment  TransactionType = "Payment"
)

// ParseTransactionType converts s into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypePayment:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", domain.ErrInvalidSeedData, s)
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// Transaction is a movement on a checking account recorded at day granularity.
type Transaction struct {
	ID                uint
	CheckingAccountID uint
	Timestamp         time.Time
	Amount            decimal.Decimal
	Type              TransactionType
}

// NewTransaction creates a Transaction whose timestamp is truncated to the calendar day.
func NewTransaction(
	accountID uint,
	at time.Time,
	amount decimal.Decimal,
	typ TransactionType,
) *Transaction {
	return &Transaction{
		CheckingAccountID: accountID,
		Timestamp:         domain.Day(at),
		Amount:            amount,
		Type:              typ,
	}
}
