package token

import (
	"errors"
	"testing"

	"github.com/amirasaad/bankseed/pkg/config"
	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	g, err := New(&config.Token{Strategy: "uuid"})
	require.NoError(t, err)
	assert.IsType(t, &UUIDGenerator{}, g)

	g, err = New(&config.Token{Strategy: "jwt", Secret: "secret", Issuer: "bank"})
	require.NoError(t, err)
	assert.IsType(t, &JWTGenerator{}, g)

	_, err = New(&config.Token{Strategy: "jwt"})
	require.Error(t, err)

	_, err = New(&config.Token{Strategy: "md5"})
	require.EqualError(t, err, `unknown token strategy "md5"`)
}

func TestUUIDGenerator(t *testing.T) {
	t.Parallel()
	g := NewUUIDGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		acc := account.New(1, 1)
		require.NoError(t, g.GenerateToken(acc))
		assert.Len(t, acc.Token, 32)
		assert.Regexp(t, `^[0-9A-F]{32}$`, acc.Token)
		_, dup := seen[acc.Token]
		require.False(t, dup, "duplicate token %s", acc.Token)
		seen[acc.Token] = struct{}{}
	}
}

func TestGenerateToken_OnlyOnce(t *testing.T) {
	t.Parallel()
	jwtGen, err := NewJWTGenerator("secret", "bank")
	require.NoError(t, err)

	for _, g := range []Generator{NewUUIDGenerator(), jwtGen} {
		acc := account.New(1, 1)
		require.NoError(t, g.GenerateToken(acc))
		first := acc.Token

		err := g.GenerateToken(acc)
		require.ErrorIs(t, err, ErrTokenAlreadySet)
		assert.Equal(t, first, acc.Token)

		require.Error(t, g.GenerateToken(nil))
	}
}

func TestJWTGenerator_RoundTrip(t *testing.T) {
	t.Parallel()
	g, err := NewJWTGenerator("secret", "bank")
	require.NoError(t, err)

	acc := account.New(4, 2)
	acc.AccountNumber = "FEL001"
	require.NoError(t, g.GenerateToken(acc))

	claims, err := g.Parse(acc.Token)
	require.NoError(t, err)
	assert.Equal(t, "FEL001", claims.AccountNumber)
	assert.Equal(t, uint(4), claims.UserID)
	assert.Equal(t, uint(2), claims.BranchID)
	assert.Equal(t, "bank", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	other, err := NewJWTGenerator("other", "bank")
	require.NoError(t, err)
	_, err = other.Parse(acc.Token)
	require.Error(t, err)
}

func TestJWTGenerator_UniquePerAccount(t *testing.T) {
	t.Parallel()
	g, err := NewJWTGenerator("secret", "bank")
	require.NoError(t, err)

	a, b := account.New(1, 1), account.New(1, 1)
	require.NoError(t, g.GenerateToken(a))
	require.NoError(t, g.GenerateToken(b))
	assert.NotEqual(t, a.Token, b.Token)
}

func TestGeneratorFunc(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	g := GeneratorFunc(func(*account.CheckingAccount) error { return boom })
	assert.ErrorIs(t, g.GenerateToken(account.New(1, 1)), boom)
}
