package token

import (
	"strings"

	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/google/uuid"
)

// UUIDGenerator issues 32-character upper-case hex tokens from random UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) GenerateToken(acc *account.CheckingAccount) error {
	if err := checkUnset(acc); err != nil {
		return err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	acc.Token = strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return nil
}
