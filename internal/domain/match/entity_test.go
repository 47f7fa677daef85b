//go:build unit

package match_test

import (
	"testing"
	"time"

	"goalkick/internal/domain/match"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kickoff = time.Date(2026, 11, 14, 15, 0, 0, 0, time.UTC)

func TestNewMatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m, err := match.NewMatch(" Nepal ", "India", " Dasharath ", kickoff, decimal.NewFromInt(500), 200)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, m.ID())
		assert.Equal(t, "Nepal vs India", m.Label())
		assert.Equal(t, "Dasharath", m.Venue())
		assert.Equal(t, 200, m.TotalSeats())
		assert.Equal(t, 200, m.AvailableSeats())
		assert.True(t, m.IsActive())
	})

	cases := []struct {
		name  string
		home  string
		price decimal.Decimal
		seats int
		errIs error
	}{
		{"blank home team", "  ", decimal.NewFromInt(1), 10, match.ErrInvalidTeams},
		{"negative price", "Nepal", decimal.NewFromInt(-1), 10, match.ErrInvalidPrice},
		{"zero seats", "Nepal", decimal.NewFromInt(1), 0, match.ErrInvalidSeats},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := match.NewMatch(tc.home, "India", "", kickoff, tc.price, tc.seats)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("free match is allowed", func(t *testing.T) {
		_, err := match.NewMatch("Nepal", "India", "", kickoff, decimal.Zero, 1)
		assert.NoError(t, err)
	})
}

func TestMatch_ReserveRelease(t *testing.T) {
	id := uuid.New()
	m := match.Reconstruct(id, "Nepal", "India", "", kickoff, decimal.NewFromInt(500), 10, 3, true)

	assert.ErrorIs(t, m.CanReserve(0), match.ErrInvalidQuantity)
	assert.ErrorIs(t, m.CanReserve(4), match.ErrInsufficientSeats)

	require.NoError(t, m.Reserve(3))
	assert.Equal(t, 0, m.AvailableSeats())
	assert.ErrorIs(t, m.Reserve(1), match.ErrInsufficientSeats)

	assert.Equal(t, 2, m.Release(2))
	assert.Equal(t, 0, m.Release(-1))
	// clamped at total
	assert.Equal(t, 8, m.Release(50))
	assert.Equal(t, 10, m.AvailableSeats())

	want := match.Reconstruct(id, "Nepal", "India", "", kickoff, decimal.NewFromInt(500), 10, 10, true)
	if diff := cmp.Diff(want, m, cmp.AllowUnexported(match.Match{})); diff != "" {
		t.Errorf("Match mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_InactiveRejectsReservation(t *testing.T) {
	m := match.Reconstruct(uuid.New(), "Nepal", "India", "", kickoff, decimal.NewFromInt(500), 10, 10, false)
	assert.ErrorIs(t, m.CanReserve(1), match.ErrMatchUnavailable)
}
