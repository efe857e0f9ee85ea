package user

import "time"

// User represents a bank customer or operator.
type User struct {
	ID           uint
	Login        string
	Password     string
	FirstName    string
	LastName     string
	EmailAddress string
	PhoneNumber  string
	CreatedAt    time.Time
}

// NewUserFromData creates a User from raw data (used for DB hydration).
func NewUserFromData(
	id uint,
	login, password, firstName, lastName, email, phone string,
	created time.Time,
) *User {
	return &User{
		ID:           id,
		Login:        login,
		Password:     password,
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: email,
		PhoneNumber:  phone,
		CreatedAt:    created,
	}
}
