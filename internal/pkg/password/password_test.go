//go:build unit

package password_test

import (
	"testing"

	"goalkick/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("gatekeeper-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "gatekeeper-pass", hash)

	assert.NoError(t, password.ComparePassword(hash, "gatekeeper-pass"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong-pass"), password.ErrComparisonFailed)
}

func TestEmptyInputs(t *testing.T) {
	_, err := password.HashPasswordWithCost("", bcrypt.MinCost)
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword("$2a$04$abc", ""), password.ErrInvalidPassword)
}

func TestCostOutOfRange(t *testing.T) {
	_, err := password.HashPasswordWithCost("pass", bcrypt.MaxCost+1)
	assert.ErrorIs(t, err, password.ErrHashingFailed)
}
