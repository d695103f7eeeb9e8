package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceInterface is implemented by credential hashing backends.
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashed, password string) bool
}

var ErrEmptyPassword = errors.New("password cannot be empty")

// PasswordService hashes credentials with bcrypt at the default cost.
type PasswordService struct{}

func (s *PasswordService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether password matches the stored hash. A
// malformed hash fails the comparison rather than erroring.
func (s *PasswordService) ComparePassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
