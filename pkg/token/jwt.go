package token

import (
	"errors"
	"time"

	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccountClaims are the claims carried by a JWT account token.
type AccountClaims struct {
	AccountNumber string `json:"acct,omitempty"`
	UserID        uint   `json:"uid"`
	BranchID      uint   `json:"bid"`
	jwt.RegisteredClaims
}

// JWTGenerator issues HS256-signed tokens describing the account.
type JWTGenerator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewJWTGenerator(secret, issuer string) (*JWTGenerator, error) {
	if secret == "" {
		return nil, errors.New("TOKEN_SECRET is required for the jwt token strategy")
	}
	return &JWTGenerator{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

func (g *JWTGenerator) GenerateToken(acc *account.CheckingAccount) error {
	if err := checkUnset(acc); err != nil {
		return err
	}
	claims := AccountClaims{
		AccountNumber: acc.AccountNumber,
		UserID:        acc.UserID,
		BranchID:      acc.BranchID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Issuer:   g.issuer,
			IssuedAt: jwt.NewNumericDate(g.now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return err
	}
	acc.Token = signed
	return nil
}

// Parse verifies tokenString and returns its claims.
func (g *JWTGenerator) Parse(tokenString string) (*AccountClaims, error) {
	claims := &AccountClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(*jwt.Token) (any, error) { return g.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(g.issuer),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
