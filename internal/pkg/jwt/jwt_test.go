//go:build unit

package jwt

import (
	"testing"
	"time"

	"goalkick/internal/domain/staff"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	id := uuid.New()

	token, expiresAt, err := svc.GenerateToken(id, staff.RoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.StaffID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestService_ValidateToken(t *testing.T) {
	issued := time.Date(2026, 11, 20, 12, 0, 0, 0, time.UTC)
	svc := NewService("test-secret", time.Hour)
	svc.now = func() time.Time { return issued }
	token, _, err := svc.GenerateToken(uuid.New(), staff.RoleGatekeeper)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := NewService("test-secret", time.Hour)
		later.now = func() time.Time { return issued.Add(2 * time.Hour) }
		_, err := later.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other-secret", time.Hour)
		other.now = svc.now
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			StaffID: uuid.New(),
			Role:    "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			},
		})
		signed, err := forged.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "admin"})
		signed, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
