package repository_test

import (
	"context"
	"testing"
	"time"

	infrarepo "github.com/amirasaad/bankseed/infra/repository"
	"github.com/amirasaad/bankseed/pkg/domain"
	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/amirasaad/bankseed/pkg/domain/branch"
	"github.com/amirasaad/bankseed/pkg/domain/setting"
	"github.com/amirasaad/bankseed/pkg/domain/user"
	"github.com/amirasaad/bankseed/pkg/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingRepository_GetByKey(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewSettingRepository(testutils.NewSeedDB(t), 0)

	require.NoError(t, repo.CreateBatch(ctx, []*setting.Setting{
		setting.New("ServiceFee", "19.90"),
		setting.New("BankCode", "9999"),
	}))

	got, err := repo.GetByKey(ctx, "BankCode")
	require.NoError(t, err)
	assert.Equal(t, "9999", got.Value)

	_, err = repo.GetByKey(ctx, "Missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingRepository_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewSettingRepository(testutils.NewSeedDB(t), 0)

	require.NoError(t, repo.CreateBatch(ctx, []*setting.Setting{setting.New("BankCode", "9999")}))
	err := repo.CreateBatch(ctx, []*setting.Setting{setting.New("BankCode", "0001")})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestTable_ListAndCount(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewBranchRepository(testutils.NewSeedDB(t), 1)

	found, err := repo.Any(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repo.First(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)

	branches := []*branch.Branch{branch.New("A01"), branch.New("A02"), branch.New("B07")}
	require.NoError(t, repo.CreateBatch(ctx, branches))
	for i, b := range branches {
		assert.Equal(t, uint(i+1), b.ID, b.BranchCode)
	}

	found, err = repo.Any(ctx)
	require.NoError(t, err)
	assert.True(t, found)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, branches, listed)

	first, err := repo.First(ctx)
	require.NoError(t, err)
	assert.Contains(t, []string{"A01", "A02", "B07"}, first.BranchCode)
}

func TestUserRepository_GetByLogin(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewUserRepository(testutils.NewSeedDB(t), 0)

	created := testutils.SeedTime
	require.NoError(t, repo.CreateBatch(ctx, []*user.User{{
		Login:        "FELIPE",
		Password:     "F1E2L3",
		FirstName:    "Felipe",
		LastName:     "Machado",
		EmailAddress: "felipecmachado@outlook.com",
		PhoneNumber:  "51 99999999",
		CreatedAt:    created,
	}}))

	u, err := repo.GetByLogin(ctx, "FELIPE")
	require.NoError(t, err)
	assert.Equal(t, "Machado", u.LastName)
	assert.Equal(t, "51 99999999", u.PhoneNumber)
	assert.True(t, u.CreatedAt.Equal(created))

	_, err = repo.GetByLogin(ctx, "felipe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountRepository_UnnumberedAccounts(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewAccountRepository(testutils.NewSeedDB(t), 0)

	a := account.New(1, 1)
	a.Token = "T1"
	b := account.New(2, 1)
	b.Token = "T2"
	require.NoError(t, repo.CreateBatch(ctx, []*account.CheckingAccount{a, b}))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, acc := range listed {
		assert.Empty(t, acc.AccountNumber)
		assert.True(t, acc.Balance.IsZero())
	}
}

func TestAccountRepository_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewAccountRepository(testutils.NewSeedDB(t), 0)

	a := account.New(1, 1)
	a.AccountNumber, a.Token = "FEL001", "T1"
	b := account.New(2, 1)
	b.AccountNumber, b.Token = "FEL001", "T2"

	err := repo.CreateBatch(ctx, []*account.CheckingAccount{a, b})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestBalanceRepository_OneRowPerDay(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewBalanceRepository(testutils.NewSeedDB(t), 0)
	day := domain.Day(testutils.SeedTime)

	require.NoError(t, repo.CreateBatch(ctx, []*account.Balance{
		{CheckingAccountID: 1, Timestamp: domain.DaysAgo(day, 1), Amount: decimal.NewFromInt(115)},
		{CheckingAccountID: 1, Timestamp: day, Amount: decimal.NewFromInt(100)},
		{CheckingAccountID: 2, Timestamp: day, Amount: decimal.NewFromInt(7)},
	}))

	balances, err := repo.ListByAccount(ctx, 1)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.True(t, balances[0].Timestamp.Equal(day), "newest first")
	assert.True(t, balances[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, balances[1].Timestamp.Equal(day.Add(-24*time.Hour)))

	err = repo.CreateBatch(ctx, []*account.Balance{
		{CheckingAccountID: 1, Timestamp: day, Amount: decimal.NewFromInt(1)},
	})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestTransactionRepository_ListByAccount(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewTransactionRepository(testutils.NewSeedDB(t), 0)
	day := domain.Day(testutils.SeedTime)

	require.NoError(t, repo.CreateBatch(ctx, []*account.Transaction{
		account.NewTransaction(1, domain.DaysAgo(day, 2), decimal.NewFromInt(150), account.TransactionTypeWithdraw),
		account.NewTransaction(1, day, decimal.NewFromInt(100), account.TransactionTypeDeposit),
		account.NewTransaction(1, day, decimal.RequireFromString("19.90"), account.TransactionTypePayment),
	}))

	txs, err := repo.ListByAccount(ctx, 1)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, account.TransactionTypeDeposit, txs[0].Type)
	assert.Equal(t, account.TransactionTypePayment, txs[1].Type)
	assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("19.90")), txs[1].Amount.String())
	assert.Equal(t, account.TransactionTypeWithdraw, txs[2].Type)

	none, err := repo.ListByAccount(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSchema_DropAndCreate(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSeedDB(t)
	schema := infrarepo.NewSchema(db)
	repo := infrarepo.NewBranchRepository(db, 0)

	require.NoError(t, repo.CreateBatch(ctx, []*branch.Branch{branch.New("A01")}))

	require.NoError(t, schema.Drop(ctx))
	for _, m := range infrarepo.Models() {
		assert.False(t, db.Migrator().HasTable(m))
	}
	_, err := repo.Any(ctx)
	require.Error(t, err)

	require.NoError(t, schema.Create(ctx))
	found, err := repo.Any(ctx)
	require.NoError(t, err)
	assert.False(t, found, "recreated tables start empty")

	require.NoError(t, schema.Create(ctx), "create is idempotent")
}
