package repository

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/domain/user"
	"github.com/amirasaad/bankseed/pkg/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	table[user.User, User]
}

// NewUserRepository returns a users repository bound to db.
func NewUserRepository(db *gorm.DB, batchSize int) repository.UserRepository {
	return &userRepository{
		table: newTable(db, batchSize, userToModel, userToDomain),
	}
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	return r.first(ctx, r.db.Where("login = ?", login))
}

func userToModel(u *user.User) *User {
	return &User{
		ID:           u.ID,
		Login:        u.Login,
		Password:     u.Password,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
		PhoneNumber:  u.PhoneNumber,
		CreatedAt:    u.CreatedAt,
	}
}

func userToDomain(m *User) *user.User {
	return user.NewUserFromData(
		m.ID,
		m.Login,
		m.Password,
		m.FirstName,
		m.LastName,
		m.EmailAddress,
		m.PhoneNumber,
		m.CreatedAt,
	)
}
