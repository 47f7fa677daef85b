//go:build e2e

package uow_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"goalkick/internal/domain/ticket"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/infra/uow"
	"goalkick/internal/pkg/clock"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/testutil/dbtest"
	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type acceptAll struct{}

func (acceptAll) Verify(context.Context, commands.VerificationRequest) (*commands.Verification, error) {
	return &commands.Verification{Verified: true, Raw: []byte("<response><response_code>Success</response_code></response>")}, nil
}

type manualCheckout struct{}

func (manualCheckout) Checkout(uuid.UUID, decimal.Decimal) commands.Checkout {
	return commands.Checkout{Mode: commands.CheckoutManual, PersonalID: "9800000000"}
}

type discard struct{}

func (discard) Notify(context.Context, commands.Event) {}

type harness struct {
	pool       *pgxpool.Pool
	reserve    commands.ReservationCommands
	settle     commands.SettlementCommands
	redemption commands.RedemptionCommands
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	pool, _ := dbtest.NewPostgres(t)
	u := uow.NewPostgresUoW(pool, sqlc.New())
	clk := clock.NewRealClock()
	rec := commands.NopRecorder()

	return &harness{
		pool:    pool,
		reserve: commands.NewReservationCommands(u, manualCheckout{}, clk, rec),
		settle: commands.NewSettlementCommands(u, acceptAll{}, ticket.NewRandomCodeGenerator("NEP", 6), discard{}, clk, rec,
			commands.SettlementConfig{CodeMaxAttempts: 5}),
		redemption: commands.NewRedemptionCommands(u, clk, rec),
	}
}

func (h *harness) reserveOne(t *testing.T, matchID uuid.UUID, qty int) *commands.ReserveResult {
	t.Helper()

	res, err := h.reserve.Reserve(context.Background(), commands.ReserveRequest{
		MatchID:  matchID,
		Quantity: qty,
		Phone:    "9841234567",
		Name:     "Ram Thapa",
	})
	require.NoError(t, err)
	return res
}

func (h *harness) pay(t *testing.T, res *commands.ReserveResult, ref string) *commands.SettlementResult {
	t.Helper()

	out, err := h.settle.HandleGatewayCallback(context.Background(), commands.GatewayCallback{
		OrderID:     res.TicketID,
		ExternalRef: ref,
		Amount:      res.TotalAmount,
	})
	require.NoError(t, err)
	return out
}

func TestReserve_ConcurrentBuyersNeverOversell(t *testing.T) {
	h := newHarness(t)
	f := dbtest.DefaultMatch()
	f.Seats = 5
	matchID := dbtest.CreateTestMatch(t, h.pool, f)

	const buyers = 20
	var sold, rejected atomic.Int32

	var g errgroup.Group
	for i := range buyers {
		g.Go(func() error {
			_, err := h.reserve.Reserve(context.Background(), commands.ReserveRequest{
				MatchID:  matchID,
				Quantity: 1,
				Phone:    fmt.Sprintf("98412345%02d", i),
				Name:     "Buyer",
			})
			switch {
			case err == nil:
				sold.Add(1)
			case errs.Is(err, commands.ErrInsufficientSeats):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(5), sold.Load())
	assert.Equal(t, int32(buyers-5), rejected.Load())
	assert.Equal(t, 0, dbtest.AvailableSeats(t, h.pool, matchID))

	var pending int
	err := h.pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM tickets WHERE match_id = $1 AND status = 'PENDING'", matchID).Scan(&pending)
	require.NoError(t, err)
	assert.Equal(t, 5, pending)
}

func TestReserve_TwoCallersForLastSeats(t *testing.T) {
	h := newHarness(t)
	f := dbtest.DefaultMatch()
	f.Seats = 2
	matchID := dbtest.CreateTestMatch(t, h.pool, f)

	errsCh := make(chan error, 2)
	var g errgroup.Group
	for _, phone := range []string{"9841000001", "9841000002"} {
		g.Go(func() error {
			_, err := h.reserve.Reserve(context.Background(), commands.ReserveRequest{
				MatchID: matchID, Quantity: 2, Phone: phone, Name: "Buyer",
			})
			errsCh <- err
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(errsCh)

	var ok, short int
	for err := range errsCh {
		switch {
		case err == nil:
			ok++
		case errs.Is(err, commands.ErrInsufficientSeats):
			short++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, short)
	assert.Equal(t, 0, dbtest.AvailableSeats(t, h.pool, matchID))
}

func TestGatewayCallback_AmountMismatchFails(t *testing.T) {
	h := newHarness(t)
	matchID := dbtest.CreateTestMatch(t, h.pool, dbtest.DefaultMatch())
	res := h.reserveOne(t, matchID, 2)
	require.True(t, res.TotalAmount.Equal(decimal.NewFromInt(1000)))
	require.Equal(t, 98, dbtest.AvailableSeats(t, h.pool, matchID))

	out, err := h.settle.HandleGatewayCallback(context.Background(), commands.GatewayCallback{
		OrderID:     res.TicketID,
		ExternalRef: "0009LOW",
		Amount:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.Equal(t, commands.OutcomeFailed, out.Outcome)
	assert.Nil(t, out.Code)
	assert.Equal(t, 100, dbtest.AvailableSeats(t, h.pool, matchID))
	status, _ := dbtest.TicketStatus(t, h.pool, res.TicketID)
	assert.Equal(t, "FAILED", status)
}

func TestGatewayFailure_ReleasesSeatsOnce(t *testing.T) {
	h := newHarness(t)
	matchID := dbtest.CreateTestMatch(t, h.pool, dbtest.DefaultMatch())
	res := h.reserveOne(t, matchID, 3)
	require.Equal(t, 97, dbtest.AvailableSeats(t, h.pool, matchID))

	first, err := h.settle.HandleGatewayFailure(context.Background(), res.TicketID)
	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeFailed, first.Outcome)
	assert.Equal(t, 100, dbtest.AvailableSeats(t, h.pool, matchID))

	second, err := h.settle.HandleGatewayFailure(context.Background(), res.TicketID)
	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeAlreadyTerminal, second.Outcome)
	assert.Equal(t, 100, dbtest.AvailableSeats(t, h.pool, matchID))

	status, code := dbtest.TicketStatus(t, h.pool, res.TicketID)
	assert.Equal(t, "FAILED", status)
	assert.Nil(t, code)
}

func TestGatewayCallback_ReplayKeepsCode(t *testing.T) {
	h := newHarness(t)
	matchID := dbtest.CreateTestMatch(t, h.pool, dbtest.DefaultMatch())
	res := h.reserveOne(t, matchID, 2)

	first := h.pay(t, res, "0009ABC")
	require.Equal(t, commands.OutcomePaid, first.Outcome)
	require.NotNil(t, first.Code)
	assert.Regexp(t, `^NEP-[A-Z0-9]{6}$`, *first.Code)

	again := h.pay(t, res, "0009ABC")
	assert.Equal(t, commands.OutcomeReplayed, again.Outcome)
	require.NotNil(t, again.Code)
	assert.Equal(t, *first.Code, *again.Code)

	// failure after success must not release paid seats
	late, err := h.settle.HandleGatewayFailure(context.Background(), res.TicketID)
	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeAlreadyTerminal, late.Outcome)
	assert.Equal(t, 98, dbtest.AvailableSeats(t, h.pool, matchID))
}

func TestRedeem_SingleAdmission(t *testing.T) {
	h := newHarness(t)
	matchID := dbtest.CreateTestMatch(t, h.pool, dbtest.DefaultMatch())

	t.Run("sequential scans", func(t *testing.T) {
		paid := h.pay(t, h.reserveOne(t, matchID, 1), "REF-SEQ")
		require.NotNil(t, paid.Code)

		first := h.redemption.Redeem(context.Background(), *paid.Code)
		assert.Equal(t, ticket.OutcomeEnter, first.Outcome)
		require.NotNil(t, first.UsedAt)

		second := h.redemption.Redeem(context.Background(), *paid.Code)
		assert.Equal(t, ticket.OutcomeAlreadyUsed, second.Outcome)
		require.NotNil(t, second.UsedAt)
		assert.True(t, first.UsedAt.Equal(*second.UsedAt))
	})

	t.Run("concurrent scans admit once", func(t *testing.T) {
		paid := h.pay(t, h.reserveOne(t, matchID, 1), "REF-RACE")
		require.NotNil(t, paid.Code)

		const gates = 10
		var entered, used atomic.Int32
		var g errgroup.Group
		for range gates {
			g.Go(func() error {
				switch h.redemption.Redeem(context.Background(), *paid.Code).Outcome {
				case ticket.OutcomeEnter:
					entered.Add(1)
				case ticket.OutcomeAlreadyUsed:
					used.Add(1)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, int32(1), entered.Load())
		assert.Equal(t, int32(gates-1), used.Load())
	})

	t.Run("unknown code", func(t *testing.T) {
		before := dbtest.AvailableSeats(t, h.pool, matchID)

		got := h.redemption.Redeem(context.Background(), "NOTACODE")

		assert.Equal(t, ticket.OutcomeInvalid, got.Outcome)
		assert.Nil(t, got.UsedAt)
		assert.Equal(t, before, dbtest.AvailableSeats(t, h.pool, matchID))
	})

	t.Run("failed ticket has no code", func(t *testing.T) {
		res := h.reserveOne(t, matchID, 1)
		_, err := h.settle.HandleGatewayFailure(context.Background(), res.TicketID)
		require.NoError(t, err)

		_, code := dbtest.TicketStatus(t, h.pool, res.TicketID)
		assert.Nil(t, code)

		got := h.redemption.Redeem(context.Background(), "NEP-ZZZZZZ")
		assert.Equal(t, ticket.OutcomeInvalid, got.Outcome)
	})
}

// claimOnVerify commits the reference on another ticket's payment while the
// settling transaction sits between its ownership lookup and its write.
type claimOnVerify struct {
	pool  *pgxpool.Pool
	owner uuid.UUID
}

func (c claimOnVerify) Verify(ctx context.Context, req commands.VerificationRequest) (*commands.Verification, error) {
	_, err := c.pool.Exec(ctx,
		"UPDATE payments SET external_ref = $1, status = 'SUCCESS' WHERE ticket_id = $2", req.ExternalRef, c.owner)
	if err != nil {
		return nil, err
	}
	return acceptAll{}.Verify(ctx, req)
}

func TestGatewayCallback_ReferenceClaimedConcurrentlyFailsTicket(t *testing.T) {
	h := newHarness(t)
	matchID := dbtest.CreateTestMatch(t, h.pool, dbtest.DefaultMatch())
	owner := h.reserveOne(t, matchID, 1)
	late := h.reserveOne(t, matchID, 2)
	require.Equal(t, 97, dbtest.AvailableSeats(t, h.pool, matchID))

	u := uow.NewPostgresUoW(h.pool, sqlc.New())
	settle := commands.NewSettlementCommands(u, claimOnVerify{pool: h.pool, owner: owner.TicketID},
		ticket.NewRandomCodeGenerator("NEP", 6), discard{}, clock.NewRealClock(), commands.NopRecorder(),
		commands.SettlementConfig{CodeMaxAttempts: 5})

	out, err := settle.HandleGatewayCallback(context.Background(), commands.GatewayCallback{
		OrderID:     late.TicketID,
		ExternalRef: "0009DUP",
		Amount:      late.TotalAmount,
	})
	require.NoError(t, err)

	assert.Equal(t, commands.OutcomeFailed, out.Outcome)
	assert.Equal(t, "reference already used by another payment", out.Reason)
	assert.Nil(t, out.Code)

	status, code := dbtest.TicketStatus(t, h.pool, late.TicketID)
	assert.Equal(t, "FAILED", status)
	assert.Nil(t, code)
	assert.Equal(t, 99, dbtest.AvailableSeats(t, h.pool, matchID))

	var paymentStatus string
	var ref *string
	err = h.pool.QueryRow(context.Background(),
		"SELECT status, external_ref FROM payments WHERE ticket_id = $1", late.TicketID).Scan(&paymentStatus, &ref)
	require.NoError(t, err)
	assert.Equal(t, "FAILED", paymentStatus)
	assert.Nil(t, ref)
}

func TestSavepoint_RollsBackOnlyNestedWrites(t *testing.T) {
	pool, _ := dbtest.NewPostgres(t)
	u := uow.NewPostgresUoW(pool, sqlc.New())
	first := dbtest.DefaultMatch()
	first.Seats = 10
	outer := dbtest.CreateTestMatch(t, pool, first)
	nested := dbtest.CreateTestMatch(t, pool, first)

	boom := errs.New("nested failure")
	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if _, _, err := tx.Matches().ReserveSeats(ctx, tx.DB(), outer, 3); err != nil {
			return err
		}
		spErr := tx.Savepoint(ctx, func(ctx context.Context) error {
			if _, _, err := tx.Matches().ReserveSeats(ctx, tx.DB(), nested, 4); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, spErr, boom)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 7, dbtest.AvailableSeats(t, pool, outer))
	assert.Equal(t, 10, dbtest.AvailableSeats(t, pool, nested))
}
