package seed

import "golang.org/x/crypto/bcrypt"

// PasswordHasher turns a plain password into its stored form.
type PasswordHasher func(password string) (string, error)

// PlainPassword stores passwords verbatim, as the demo data expects.
func PlainPassword(password string) (string, error) {
	return password, nil
}

// BcryptPassword returns a PasswordHasher using bcrypt at the given cost.
func BcryptPassword(cost int) PasswordHasher {
	return func(password string) (string, error) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		return string(hashed), err
	}
}
