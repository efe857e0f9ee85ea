package account

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amirasaad/bankseed/pkg/domain"
	"github.com/shopspring/decimal"
)

// accountNumberPrefixLen is the number of first-name letters used in a derived account number.
const accountNumberPrefixLen = 3

// CheckingAccount is a user's checking account held at a branch.
// AccountNumber is empty when the account was created without one.
type CheckingAccount struct {
	ID            uint
	AccountNumber string
	Balance       decimal.Decimal
	Token         string
	UserID        uint
	BranchID      uint
}

// New creates a CheckingAccount owned by userID and held at branchID.
func New(userID, branchID uint) *CheckingAccount {
	return &CheckingAccount{
		UserID:   userID,
		BranchID: branchID,
		Balance:  decimal.Zero,
	}
}

// HasToken reports whether an access token was already assigned.
func (a *CheckingAccount) HasToken() bool {
	return a.Token != ""
}

// NewAccountNumber derives an account number from the upper-cased first three
// letters of firstName followed by suffix, e.g. ("Felipe", "001") -> "FEL001".
func NewAccountNumber(firstName, suffix string) (string, error) {
	name := strings.TrimSpace(firstName)
	if utf8.RuneCountInString(name) < accountNumberPrefixLen {
		return "", fmt.Errorf(
			"%w: first name %q is shorter than %d letters",
			domain.ErrInvalidSeedData,
			firstName,
			accountNumberPrefixLen,
		)
	}
	prefix := []rune(name)[:accountNumberPrefixLen]
	return strings.ToUpper(string(prefix)) + suffix, nil
}
