//go:build unit

package payment_test

import (
	"strings"
	"testing"

	"goalkick/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	assert.True(t, payment.StatusPending.AcceptsReference())
	assert.True(t, payment.StatusAwaitingVerification.AcceptsReference())

	for _, s := range []payment.Status{payment.StatusSuccess, payment.StatusCompleted, payment.StatusFailed, payment.StatusRejected} {
		assert.False(t, s.AcceptsReference(), s)
		assert.True(t, s.IsSettled(), s)
	}

	_, err := payment.ParseStatus("REFUNDED")
	assert.ErrorIs(t, err, payment.ErrInvalidStatus)
	assert.False(t, payment.Status("REFUNDED").IsSettled())
}

func TestNewExternalRef(t *testing.T) {
	r, err := payment.NewExternalRef("  0007ZX9  ")
	require.NoError(t, err)
	assert.Equal(t, "0007ZX9", r.String())

	_, err = payment.NewExternalRef("   ")
	assert.ErrorIs(t, err, payment.ErrEmptyExternalRef)

	_, err = payment.NewExternalRef(strings.Repeat("x", payment.MaxExternalRefLength+1))
	assert.ErrorIs(t, err, payment.ErrExternalRefTooLong)
}
