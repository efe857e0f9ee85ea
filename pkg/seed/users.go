package seed

import (
	"context"
	"fmt"

	"github.com/amirasaad/bankseed/pkg/domain/user"
	"github.com/amirasaad/bankseed/pkg/repository"
)

// SeedUsers inserts the dataset's users when the users table is empty.
func (s *Seeder) SeedUsers(ctx context.Context) error {
	return s.seedTable(ctx, "users",
		func(uow repository.UnitOfWork) emptyChecker { return uow.UserRepository() },
		func(ctx context.Context, uow repository.UnitOfWork) (int, error) {
			now := s.now()
			users := make([]*user.User, 0, len(s.data.Users))
			for _, u := range s.data.Users {
				password, err := s.hash(u.Password)
				if err != nil {
					return 0, fmt.Errorf("hash password for %q: %w", u.Login, err)
				}
				users = append(users, &user.User{
					Login:        u.Login,
					Password:     password,
					FirstName:    u.FirstName,
					LastName:     u.LastName,
					EmailAddress: u.EmailAddress,
					PhoneNumber:  u.PhoneNumber,
					CreatedAt:    now,
				})
			}
			return len(users), uow.UserRepository().CreateBatch(ctx, users)
		},
	)
}
