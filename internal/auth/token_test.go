package auth_test

import (
	"errors"
	"testing"
	"time"

	"client-portal/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminGate_CheckPassword(t *testing.T) {
	gate, err := auth.NewAdminGate("letmein", "secret", time.Hour)
	require.NoError(t, err)

	assert.True(t, gate.CheckPassword("letmein"))
	assert.False(t, gate.CheckPassword("letmein "))
	assert.False(t, gate.CheckPassword(""))
}

func TestAdminGate_IssueAndVerify(t *testing.T) {
	gate, err := auth.NewAdminGate("letmein", "secret", time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := gate.Issue()
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
	assert.NoError(t, gate.Verify(token))
}

func TestAdminGate_RandomSecretWhenUnset(t *testing.T) {
	first, err := auth.NewAdminGate("pw", "", time.Hour)
	require.NoError(t, err)
	second, err := auth.NewAdminGate("pw", "", time.Hour)
	require.NoError(t, err)

	token, _, err := first.Issue()
	require.NoError(t, err)

	assert.NoError(t, first.Verify(token))
	assert.Error(t, second.Verify(token))
}

func TestAdminGate_Verify_Rejects(t *testing.T) {
	gate, err := auth.NewAdminGate("pw", "secret", time.Hour)
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    "client-portal",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongSubject := valid()
	wrongSubject.Subject = "client"

	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "invalid-token"},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("other"), valid())},
		{"expired", sign(jwt.SigningMethodHS256, []byte("secret"), expired)},
		{"wrong subject", sign(jwt.SigningMethodHS256, []byte("secret"), wrongSubject)},
		{"no expiry", sign(jwt.SigningMethodHS256, []byte("secret"), noExpiry)},
		{"wrong algorithm", sign(jwt.SigningMethodHS512, []byte("secret"), valid())},
		{"none algorithm", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.Verify(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, auth.ErrInvalidToken))
		})
	}
}
