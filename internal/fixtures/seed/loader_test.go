package seed_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	fixtures "github.com/amirasaad/bankseed/internal/fixtures/seed"
	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amounts(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.NewFromInt(v))
	}
	return out
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"playground", "webplayground"}, fixtures.Names())
}

func TestLoad_Playground(t *testing.T) {
	ds, err := fixtures.Load("")
	require.NoError(t, err)

	assert.Equal(t, "playground", ds.Name)
	require.Len(t, ds.Settings, 3)
	assert.Equal(t, "AnnualInterestRate", ds.Settings[0].Key)
	assert.Equal(t, "0.025", ds.Settings[0].Value)
	assert.Equal(t, "ServiceFee", ds.Settings[1].Key)
	assert.Equal(t, "19.90", ds.Settings[1].Value)
	assert.Equal(t, "BankCode", ds.Settings[2].Key)
	assert.Equal(t, "9999", ds.Settings[2].Value)

	require.Len(t, ds.Users, 2)
	assert.Equal(t, "admin", ds.Users[0].Login)
	assert.Equal(t, "Administrator", ds.Users[0].FirstName)
	assert.Equal(t, "FELIPE", ds.Users[1].Login)
	assert.Equal(t, "51 99999999", ds.Users[1].PhoneNumber)

	assert.Equal(t, []string{"A01", "A02"}, ds.Branches)
	assert.Equal(t, "001", ds.Accounts.NumberSuffix)
	require.NotNil(t, ds.Accounts.StartingBalance)
	assert.True(t, ds.Accounts.StartingBalance.Equal(decimal.NewFromInt(300)))

	want := amounts(100, 115, 150, 150, 300, 200, 100)
	require.Len(t, ds.Balances, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(ds.Balances[i]), "balance %d", i)
	}

	wantTypes := []account.TransactionType{
		account.TransactionTypeDeposit,
		account.TransactionTypePayment,
		account.TransactionTypeWithdraw,
		account.TransactionTypeDeposit,
		account.TransactionTypeDeposit,
		account.TransactionTypeWithdraw,
		account.TransactionTypeWithdraw,
	}
	require.Len(t, ds.Transactions, len(wantTypes))
	for i, tx := range ds.Transactions {
		assert.True(t, want[i].Equal(tx.Amount), "transaction %d amount", i)
		assert.Equal(t, wantTypes[i], tx.Type, "transaction %d type", i)
	}
}

func TestLoad_WebPlayground(t *testing.T) {
	ds, err := fixtures.Load("webplayground")
	require.NoError(t, err)

	require.Len(t, ds.Users, 1)
	assert.Equal(t, "FELIPE", ds.Users[0].Login)
	assert.Empty(t, ds.Accounts.NumberSuffix)
	assert.Nil(t, ds.Accounts.StartingBalance)
	assert.Empty(t, ds.Balances)
	assert.Empty(t, ds.Transactions)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `name: custom
settings:
  - key: BankCode
    value: "1234"
users:
  - login: jdoe
    password: pw
    first_name: John
branches: [B01]
accounts:
  number_suffix: "777"
balances: ["10.50"]
transactions:
  - { amount: "10.50", type: Payment }
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ds, err := fixtures.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", ds.Name)
	assert.Equal(t, "777", ds.Accounts.NumberSuffix)
	assert.True(t, ds.Balances[0].Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, account.TransactionTypePayment, ds.Transactions[0].Type)
}

func TestLoad_Unknown(t *testing.T) {
	_, err := fixtures.Load("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "playground, webplayground")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty", yaml: ""},
		{name: "missing name", yaml: "branches: [A01]\n"},
		{name: "unknown field", yaml: "name: x\ncolour: red\n"},
		{name: "duplicate login", yaml: "name: x\nusers:\n  - {login: a, password: p, first_name: Ann}\n  - {login: a, password: p, first_name: Ann}\n"},
		{name: "duplicate branch", yaml: "name: x\nbranches: [A01, A01]\n"},
		{name: "duplicate setting", yaml: "name: x\nsettings:\n  - {key: K, value: a}\n  - {key: K, value: b}\n"},
		{name: "bad email", yaml: "name: x\nusers:\n  - {login: a, password: p, first_name: Ann, email: nope}\n"},
		{name: "bad balance", yaml: "name: x\nbalances: [abc]\n"},
		{name: "bad transaction type", yaml: "name: x\ntransactions:\n  - {amount: \"1\", type: Refund}\n"},
		{name: "bad starting balance", yaml: "name: x\naccounts:\n  starting_balance: lots\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixtures.Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
		})
	}
}
