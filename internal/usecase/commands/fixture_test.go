//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"goalkick/internal/domain/match"
	"goalkick/internal/domain/ticket"
	"goalkick/internal/infra"
	"goalkick/internal/pkg/clock"
	commandsmock "goalkick/internal/testutil/mock/commands"
	sharedmock "goalkick/internal/testutil/mock/shared"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 11, 14, 13, 30, 0, 0, time.UTC)

type fixture struct {
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	matches  *sharedmock.MockMatchRepository
	tickets  *sharedmock.MockTicketRepository
	payments *sharedmock.MockPaymentRepository
	buyers   *sharedmock.MockBuyerRepository
	staff    *sharedmock.MockStaffRepository
	recorder *commandsmock.MockRecorder
	notifier *commandsmock.MockNotifier
	clock    *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		matches:  sharedmock.NewMockMatchRepository(ctrl),
		tickets:  sharedmock.NewMockTicketRepository(ctrl),
		payments: sharedmock.NewMockPaymentRepository(ctrl),
		buyers:   sharedmock.NewMockBuyerRepository(ctrl),
		staff:    sharedmock.NewMockStaffRepository(ctrl),
		recorder: commandsmock.NewMockRecorder(ctrl),
		notifier: commandsmock.NewMockNotifier(ctrl),
		clock:    clock.NewMockClock(fixedNow),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().Matches().Return(f.matches).AnyTimes()
	f.tx.EXPECT().Tickets().Return(f.tickets).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Buyers().Return(f.buyers).AnyTimes()
	f.tx.EXPECT().Staff().Return(f.staff).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Savepoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	return f
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows)
}

func dbFailure() error {
	return infra.WrapRepoErr("query failed", context.DeadlineExceeded, infra.KindDBFailure)
}

func activeMatch(seats int) *match.Match {
	return match.Reconstruct(uuid.New(), "Nepal", "India", "Dasharath", fixedNow.Add(48*time.Hour), decimal.NewFromInt(500), 100, seats, true)
}

func ticketIn(status ticket.Status, qty int, code *string, usedAt *time.Time) *ticket.Ticket {
	total := decimal.NewFromInt(int64(500 * qty))
	return ticket.Reconstruct(uuid.New(), uuid.New(), uuid.New(), qty, total, status, code, usedAt, fixedNow.Add(-time.Hour))
}

func strPtr(s string) *string { return &s }

// fixedCodes hands out codes in order and repeats the last one.
type fixedCodes struct {
	codes []string
	calls int
}

func (g *fixedCodes) Generate() (ticket.Code, error) {
	i := min(g.calls, len(g.codes)-1)
	g.calls++
	return ticket.NormalizeCode(g.codes[i])
}

func reconstructInactive(m *match.Match) *match.Match {
	return match.Reconstruct(m.ID(), m.TeamHome(), m.TeamAway(), m.Venue(), m.StartTime(), m.Price(), m.TotalSeats(), m.AvailableSeats(), false)
}
