package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is a historical snapshot of an account balance for one calendar day.
type Balance struct {
	ID                uint
	CheckingAccountID uint
	Timestamp         time.Time
	Amount            decimal.Decimal
}
