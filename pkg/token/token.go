// Package token assigns opaque access tokens to checking accounts.
package token

import (
	"errors"
	"fmt"

	"github.com/amirasaad/bankseed/pkg/config"
	"github.com/amirasaad/bankseed/pkg/domain/account"
)

// ErrTokenAlreadySet is returned when an account already carries a token.
var ErrTokenAlreadySet = errors.New("account token already set")

// Generator sets the access token of an account. It is called once per
// account, after the other fields are populated and before the account is
// persisted.
type Generator interface {
	GenerateToken(acc *account.CheckingAccount) error
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(acc *account.CheckingAccount) error

func (f GeneratorFunc) GenerateToken(acc *account.CheckingAccount) error {
	return f(acc)
}

// New builds the Generator selected by cfg.Strategy.
func New(cfg *config.Token) (Generator, error) {
	strategies := map[string]func() (Generator, error){
		"uuid": func() (Generator, error) {
			return NewUUIDGenerator(), nil
		},
		"jwt": func() (Generator, error) {
			return NewJWTGenerator(cfg.Secret, cfg.Issuer)
		},
	}
	factory, ok := strategies[cfg.Strategy]
	if !ok {
		return nil, fmt.Errorf("unknown token strategy %q", cfg.Strategy)
	}
	return factory()
}

func checkUnset(acc *account.CheckingAccount) error {
	if acc == nil {
		return errors.New("nil account")
	}
	if acc.HasToken() {
		return ErrTokenAlreadySet
	}
	return nil
}
