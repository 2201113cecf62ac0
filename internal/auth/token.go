package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	adminSubject = "admin"
	tokenIssuer  = "client-portal"
)

var ErrInvalidToken = errors.New("invalid admin token")

// AdminGate checks the admin password and issues the session tokens the
// admin routes require.
type AdminGate struct {
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewAdminGate builds a gate. An empty secret is replaced with a random one,
// which invalidates tokens on restart.
func NewAdminGate(password, secret string, ttl time.Duration) (*AdminGate, error) {
	if secret == "" {
		generated, err := randomSecret(32)
		if err != nil {
			return nil, err
		}
		secret = generated
	}

	return &AdminGate{
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// CheckPassword compares in constant time.
func (g *AdminGate) CheckPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(g.password)) == 1
}

// Issue signs a new admin token and returns it with its expiry.
func (g *AdminGate) Issue() (string, time.Time, error) {
	now := g.now()
	expiresAt := now.Add(g.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign admin token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify validates signature, algorithm, issuer, subject and expiry.
func (g *AdminGate) Verify(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithSubject(adminSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return nil
}

func randomSecret(byteLength int) (string, error) {
	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
