//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"goalkick/internal/domain/match"
	"goalkick/internal/domain/payment"
	"goalkick/internal/domain/ticket"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAdmin(f *fixture) commands.AdminCommands {
	return commands.NewAdminCommands(f.uow, &fixedCodes{codes: []string{"TKT-ADM1N2"}}, f.notifier, f.clock, f.recorder, 3)
}

func TestApprovePayment(t *testing.T) {
	actor := uuid.New()

	t.Run("pending ticket becomes paid", func(t *testing.T) {
		f := newFixture(t)
		svc := newAdmin(f)
		tk := ticketIn(ticket.StatusPending, 2, nil, nil)

		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
		f.tickets.EXPECT().CodeExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.tickets.EXPECT().Transition(gomock.Any(), gomock.Any(), tk.ID(), ticket.StatusPaid, gomock.Any()).Return(true, nil)
		f.payments.EXPECT().Settle(gomock.Any(), gomock.Any(), tk.ID(), payment.StatusCompleted, nil, gomock.Any()).Return(nil)
		f.reads.EXPECT().MatchByID(gomock.Any(), tk.MatchID()).Return(&shared.MatchSnapshot{TeamHome: "Nepal", TeamAway: "India"}, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
		f.recorder.EXPECT().Settlement("admin_approve", "PAID")

		res, err := svc.ApprovePayment(context.Background(), tk.ID(), actor)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomePaid, res.Outcome)
		require.NotNil(t, res.Code)
		assert.Equal(t, "TKT-ADM1N2", *res.Code)
	})

	t.Run("paid ticket keeps its code", func(t *testing.T) {
		f := newFixture(t)
		svc := newAdmin(f)
		tk := ticketIn(ticket.StatusPaid, 2, strPtr("TKT-OLD123"), nil)

		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
		f.recorder.EXPECT().Settlement("admin_approve", "REPLAYED")

		res, err := svc.ApprovePayment(context.Background(), tk.ID(), actor)

		require.NoError(t, err)
		assert.Equal(t, "TKT-OLD123", *res.Code)
	})

	t.Run("rejected ticket cannot be approved", func(t *testing.T) {
		f := newFixture(t)
		svc := newAdmin(f)
		tk := ticketIn(ticket.StatusRejected, 2, nil, nil)

		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
		f.recorder.EXPECT().Settlement("admin_approve", "error")

		_, err := svc.ApprovePayment(context.Background(), tk.ID(), actor)

		assert.True(t, errs.Is(err, commands.ErrAlreadyTerminal))
	})
}

func TestRejectPayment(t *testing.T) {
	actor := uuid.New()

	t.Run("pending ticket is rejected and seats return", func(t *testing.T) {
		f := newFixture(t)
		svc := newAdmin(f)
		tk := ticketIn(ticket.StatusPending, 4, nil, nil)

		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
		f.tickets.EXPECT().Transition(gomock.Any(), gomock.Any(), tk.ID(), ticket.StatusRejected, nil).Return(true, nil)
		f.matches.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), tk.MatchID(), 4).Return(100, nil)
		f.payments.EXPECT().Settle(gomock.Any(), gomock.Any(), tk.ID(), payment.StatusRejected, nil, gomock.Any()).Return(nil)
		f.recorder.EXPECT().Settlement("admin_reject", "FAILED")

		res, err := svc.RejectPayment(context.Background(), tk.ID(), actor)

		require.NoError(t, err)
		assert.Equal(t, ticket.StatusRejected, res.Status)
	})

	t.Run("rejecting twice releases nothing", func(t *testing.T) {
		f := newFixture(t)
		svc := newAdmin(f)
		tk := ticketIn(ticket.StatusRejected, 4, nil, nil)

		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
		f.recorder.EXPECT().Settlement("admin_reject", "ALREADY_TERMINAL")

		res, err := svc.RejectPayment(context.Background(), tk.ID(), actor)

		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeAlreadyTerminal, res.Outcome)
	})

	t.Run("paid ticket cannot be rejected", func(t *testing.T) {
		f := newFixture(t)
		svc := newAdmin(f)
		tk := ticketIn(ticket.StatusPaid, 1, strPtr("TKT-OLD123"), nil)

		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
		f.recorder.EXPECT().Settlement("admin_reject", "error")

		_, err := svc.RejectPayment(context.Background(), tk.ID(), actor)

		assert.True(t, errs.Is(err, commands.ErrAlreadyTerminal))
	})
}

func TestDeleteTicket(t *testing.T) {
	cases := []struct {
		status   ticket.Status
		released int
	}{
		{ticket.StatusPending, 3},
		{ticket.StatusPaid, 3},
		{ticket.StatusFailed, 0},
		{ticket.StatusRejected, 0},
	}
	for _, tc := range cases {
		t.Run(tc.status.String(), func(t *testing.T) {
			f := newFixture(t)
			svc := newAdmin(f)
			tk := ticketIn(tc.status, 3, nil, nil)

			f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
			if tc.released > 0 {
				f.matches.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), tk.MatchID(), 3).Return(50, nil)
			}
			f.tickets.EXPECT().Delete(gomock.Any(), gomock.Any(), tk.ID()).Return(true, nil)

			res, err := svc.DeleteTicket(context.Background(), tk.ID(), uuid.New())

			require.NoError(t, err)
			assert.Equal(t, tc.released, res.ReleasedSeats)
			assert.Equal(t, tc.status, res.Status)
		})
	}

	t.Run("missing ticket", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		_, err := newAdmin(f).DeleteTicket(context.Background(), id, uuid.New())

		assert.True(t, errs.Is(err, commands.ErrTicketNotFound))
	})
}

func TestAdminMarkUsed(t *testing.T) {
	t.Run("paid ticket", func(t *testing.T) {
		f := newFixture(t)
		tk := ticketIn(ticket.StatusPaid, 2, strPtr("TKT-AB3K9Z"), nil)
		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
		f.tickets.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), tk.ID(), fixedNow).Return(true, nil)
		f.recorder.EXPECT().Redemption("ENTER")

		res, err := newAdmin(f).MarkUsed(context.Background(), tk.ID(), uuid.New())

		require.NoError(t, err)
		assert.Equal(t, ticket.OutcomeEnter, res.Outcome)
		assert.Equal(t, "TKT-AB3K9Z", res.Code)
	})

	t.Run("already used keeps timestamp", func(t *testing.T) {
		f := newFixture(t)
		used := fixedNow.Add(-time.Hour)
		tk := ticketIn(ticket.StatusPaid, 2, strPtr("TKT-AB3K9Z"), &used)
		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
		f.recorder.EXPECT().Redemption("ALREADY_USED")

		res, err := newAdmin(f).MarkUsed(context.Background(), tk.ID(), uuid.New())

		require.NoError(t, err)
		assert.True(t, res.UsedAt.Equal(used))
	})

	t.Run("unpaid ticket", func(t *testing.T) {
		f := newFixture(t)
		tk := ticketIn(ticket.StatusPending, 2, nil, nil)
		f.tickets.EXPECT().LockByID(gomock.Any(), gomock.Any(), tk.ID()).Return(tk, nil)
		f.recorder.EXPECT().Redemption("UNPAID")

		res, err := newAdmin(f).MarkUsed(context.Background(), tk.ID(), uuid.New())

		require.NoError(t, err)
		assert.Equal(t, ticket.OutcomeUnpaid, res.Outcome)
	})
}

func TestCreateMatch(t *testing.T) {
	req := commands.CreateMatchRequest{
		TeamHome:   "Nepal",
		TeamAway:   "India",
		Venue:      "Dasharath",
		StartTime:  fixedNow.Add(72 * time.Hour),
		Price:      decimal.NewFromInt(500),
		TotalSeats: 2000,
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		var saved *match.Match
		f.matches.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, _ sqlc.DBTX, m *match.Match) { saved = m }).Return(nil)

		id, err := newAdmin(f).CreateMatch(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), id)
		assert.Equal(t, 2000, saved.AvailableSeats())
	})

	t.Run("invalid seats", func(t *testing.T) {
		f := newFixture(t)
		bad := req
		bad.TotalSeats = 0

		_, err := newAdmin(f).CreateMatch(context.Background(), bad)

		assert.True(t, errs.Is(err, commands.ErrValidation))
		assert.True(t, errs.Is(err, match.ErrInvalidSeats))
	})
}

func TestToggleMatch(t *testing.T) {
	f := newFixture(t)
	m := activeMatch(10)
	f.matches.EXPECT().LockByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
	f.matches.EXPECT().SetActive(gomock.Any(), gomock.Any(), m.ID(), false).Return(reconstructInactive(m), nil)

	state, err := newAdmin(f).ToggleMatch(context.Background(), m.ID())

	require.NoError(t, err)
	assert.False(t, state.IsActive)

	t.Run("unknown match", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.matches.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		_, err := newAdmin(f).ToggleMatch(context.Background(), id)

		assert.True(t, errs.Is(err, commands.ErrMatchUnavailable))
	})
}
