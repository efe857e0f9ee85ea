package seed

import (
	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// Dataset is the fixed sample data written by the seeders.
type Dataset struct {
	Name     string
	Settings []SettingSeed
	Users    []UserSeed
	Branches []string
	Accounts AccountPlan
	// Balances holds one amount per day offset: index 0 is today, index 1
	// yesterday and so on.
	Balances []decimal.Decimal
	// Transactions uses the same day offsets as Balances.
	Transactions []TransactionSeed
}

type SettingSeed struct {
	Key   string
	Value string
}

type UserSeed struct {
	Login        string
	Password     string
	FirstName    string
	LastName     string
	EmailAddress string
	PhoneNumber  string
}

// AccountPlan describes how each user's checking account is built.
type AccountPlan struct {
	// NumberSuffix enables derived account numbers (first three letters of
	// the first name plus the suffix). Empty leaves accounts unnumbered.
	NumberSuffix string
	// StartingBalance is left to the storage default when nil.
	StartingBalance *decimal.Decimal
}

type TransactionSeed struct {
	Amount decimal.Decimal
	Type   account.TransactionType
}
