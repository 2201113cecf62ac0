package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used for client passwords.
const DefaultCost = 12

var errPasswordEmpty = errors.New("password cannot be empty")

var (
	absentOnce sync.Once
	absentHash []byte
)

// HashPassword returns a bcrypt hash of password at DefaultCost.
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

func HashPasswordWithCost(password string, cost int) (string, error) {
	if len(password) == 0 {
		return "", errPasswordEmpty
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. A malformed hash
// never matches.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyAbsent does the bcrypt work of VerifyPassword for an account that does
// not exist, so a miss costs as much as a wrong password. It always reports
// false.
func VerifyAbsent(password string) bool {
	absentOnce.Do(func() {
		absentHash, _ = bcrypt.GenerateFromPassword([]byte("absent-account"), DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(absentHash, []byte(password))
	return false
}
