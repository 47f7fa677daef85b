//go:build unit

package commands_test

import (
	"context"
	"testing"

	"goalkick/internal/domain/buyer"
	"goalkick/internal/domain/ticket"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/errs"
	commandsmock "goalkick/internal/testutil/mock/commands"
	"goalkick/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validReserve(matchID uuid.UUID) commands.ReserveRequest {
	return commands.ReserveRequest{MatchID: matchID, Quantity: 2, Phone: "9841234567", Name: "Ram"}
}

func TestReserve_Success(t *testing.T) {
	f := newFixture(t)
	checkout := commandsmock.NewMockCheckoutBuilder(f.ctrl)
	svc := commands.NewReservationCommands(f.uow, checkout, f.clock, f.recorder)

	m := activeMatch(10)
	buyerID := uuid.New()
	var created *ticket.Ticket
	var paymentAmount decimal.Decimal

	f.matches.EXPECT().LockByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
	f.buyers.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, phone buyer.Phone, name buyer.Name) (uuid.UUID, error) {
			assert.Equal(t, "9841234567", phone.String())
			assert.Equal(t, "Ram", name.String())
			return buyerID, nil
		})
	f.tickets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, tk *ticket.Ticket) error {
			created = tk
			return nil
		})
	f.matches.EXPECT().ReserveSeats(gomock.Any(), gomock.Any(), m.ID(), 2).Return(8, true, nil)
	f.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, ticketID uuid.UUID, amount decimal.Decimal) error {
			assert.Equal(t, created.ID(), ticketID)
			paymentAmount = amount
			return nil
		})
	checkout.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(commands.Checkout{Mode: commands.CheckoutManual, PersonalID: "9800000000"})
	f.recorder.EXPECT().Reservation("reserved")

	res, err := svc.Reserve(context.Background(), validReserve(m.ID()))

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID(), res.TicketID)
	assert.Equal(t, buyerID, created.BuyerID())
	assert.Equal(t, ticket.StatusPending, res.Status)
	assert.Equal(t, 8, res.RemainingSeats)
	assert.True(t, res.TotalAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, paymentAmount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, commands.CheckoutManual, res.Checkout.Mode)
}

func TestReserve_Errors(t *testing.T) {
	cases := []struct {
		name   string
		req    func(matchID uuid.UUID) commands.ReserveRequest
		setup  func(f *fixture, matchID uuid.UUID)
		errIs  error
		label  string
		detail error
	}{
		{
			name:   "quantity above limit",
			req:    func(id uuid.UUID) commands.ReserveRequest { r := validReserve(id); r.Quantity = 11; return r },
			errIs:  commands.ErrValidation,
			detail: ticket.ErrInvalidQuantity,
			label:  "invalid",
		},
		{
			name:   "bad phone",
			req:    func(id uuid.UUID) commands.ReserveRequest { r := validReserve(id); r.Phone = "abc"; return r },
			errIs:  commands.ErrValidation,
			detail: buyer.ErrInvalidPhone,
			label:  "invalid",
		},
		{
			name: "unknown match",
			setup: func(f *fixture, id uuid.UUID) {
				f.matches.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(nil, notFound())
			},
			errIs: commands.ErrMatchUnavailable,
			label: "unavailable",
		},
		{
			name: "inactive match",
			setup: func(f *fixture, id uuid.UUID) {
				m := activeMatch(10)
				inactive := reconstructInactive(m)
				f.matches.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(inactive, nil)
			},
			errIs: commands.ErrMatchUnavailable,
			label: "unavailable",
		},
		{
			name: "not enough seats on snapshot",
			setup: func(f *fixture, id uuid.UUID) {
				f.matches.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(activeMatch(1), nil)
			},
			errIs: commands.ErrInsufficientSeats,
			label: "sold_out",
		},
		{
			name: "conditional decrement refused",
			setup: func(f *fixture, id uuid.UUID) {
				f.matches.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(activeMatch(5), nil)
				f.buyers.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
				f.tickets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.matches.EXPECT().ReserveSeats(gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(0, false, nil)
			},
			errIs: commands.ErrInsufficientSeats,
			label: "sold_out",
		},
		{
			name: "ticket insert fails",
			setup: func(f *fixture, id uuid.UUID) {
				f.matches.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(activeMatch(5), nil)
				f.buyers.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
				f.tickets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbFailure())
			},
			errIs: commands.ErrDatabaseOperationFailed,
			label: "error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			svc := commands.NewReservationCommands(f.uow, nil, f.clock, f.recorder)
			matchID := uuid.New()
			req := validReserve(matchID)
			if tc.req != nil {
				req = tc.req(matchID)
			}
			if tc.setup != nil {
				tc.setup(f, matchID)
			}
			f.recorder.EXPECT().Reservation(tc.label)

			res, err := svc.Reserve(context.Background(), req)

			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			if tc.detail != nil {
				assert.True(t, errs.Is(err, tc.detail), "expected detail %v, got %v", tc.detail, err)
			}
		})
	}
}
