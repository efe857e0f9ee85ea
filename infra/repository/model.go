package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setting represents a settings record in the database.
type Setting struct {
	ID    uint   `gorm:"primaryKey"`
	Key   string `gorm:"uniqueIndex;not null;size:100"`
	Value string `gorm:"not null;size:255"`
}

// TableName specifies the table name for the Setting model.
func (Setting) TableName() string {
	return "settings"
}

// User represents a user record in the database.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Login        string `gorm:"uniqueIndex;not null;size:50"`
	Password     string `gorm:"not null;size:255"`
	FirstName    string `gorm:"not null;size:100"`
	LastName     string `gorm:"size:100"`
	EmailAddress string `gorm:"size:255"`
	PhoneNumber  string `gorm:"size:30"`
	CreatedAt    time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Branch represents a branch record in the database.
type Branch struct {
	ID         uint   `gorm:"primaryKey"`
	BranchCode string `gorm:"uniqueIndex;not null;size:10"`
}

// TableName specifies the table name for the Branch model.
func (Branch) TableName() string {
	return "branches"
}

// CheckingAccount represents a checking account record in the database.
// AccountNumber is nullable so accounts created without a number do not
// collide on the unique index.
type CheckingAccount struct {
	ID            uint            `gorm:"primaryKey"`
	AccountNumber *string         `gorm:"uniqueIndex;size:20"`
	Balance       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Token         string          `gorm:"uniqueIndex;not null;size:512"`
	UserID        uint            `gorm:"not null;index"`
	User          User
	BranchID      uint `gorm:"not null;index"`
	Branch        Branch
}

// TableName specifies the table name for the CheckingAccount model.
func (CheckingAccount) TableName() string {
	return "checking_accounts"
}

// Balance represents a daily balance snapshot record in the database.
type Balance struct {
	ID                uint `gorm:"primaryKey"`
	CheckingAccountID uint `gorm:"not null;uniqueIndex:idx_balances_account_day"`
	CheckingAccount   CheckingAccount
	Timestamp         time.Time       `gorm:"not null;uniqueIndex:idx_balances_account_day"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName specifies the table name for the Balance model.
func (Balance) TableName() string {
	return "balances"
}

// Transaction represents an account transaction record in the database.
type Transaction struct {
	ID                uint `gorm:"primaryKey"`
	CheckingAccountID uint `gorm:"not null;index"`
	CheckingAccount   CheckingAccount
	Timestamp         time.Time       `gorm:"not null"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TransactionType   string          `gorm:"not null;size:20"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// Models lists every model in foreign-key dependency order.
func Models() []any {
	return []any{
		&Setting{},
		&User{},
		&Branch{},
		&CheckingAccount{},
		&Balance{},
		&Transaction{},
	}
}
