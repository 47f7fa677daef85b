//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"goalkick/internal/domain/ticket"
	"goalkick/internal/infra"
	"goalkick/internal/infra/repository"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"
	repositorymock "goalkick/internal/testutil/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTicketRepo(t *testing.T) (*repository.TicketRepository, *repositorymock.MockTicketWriteQueries, sqlc.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockTicketWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewTicketRepository(mockQueries, mockDB), mockQueries, mockDB
}

func TestTicketRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newTicketRepo(t)

	qty, err := ticket.NewQuantity(3)
	require.NoError(t, err)
	tk, err := ticket.NewTicket(uuid.New(), uuid.New(), qty, decimal.NewFromInt(500), createdAt)
	require.NoError(t, err)

	mockQueries.EXPECT().CreateTicket(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateTicketParams) (sqlc.Tickets, error) {
			assert.Equal(t, tk.ID(), arg.ID)
			assert.Equal(t, int32(3), arg.Quantity)
			total, err := pgconv.DecimalFromNumeric(arg.TotalAmount)
			require.NoError(t, err)
			assert.True(t, total.Equal(decimal.NewFromInt(1500)))
			return sqlc.Tickets{ID: arg.ID}, nil
		})
	require.NoError(t, repo.Create(ctx, mockDB, tk))

	dup := errors.Join(errors.New("insert failed"), dupKeyErr)
	mockQueries.EXPECT().CreateTicket(ctx, mockDB, gomock.Any()).Return(sqlc.Tickets{}, dup)
	err = repo.Create(ctx, mockDB, tk)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestTicketRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name          string
		row           sqlc.Tickets
		err           error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: pending ticket",
			row:  ticketRow(id, "PENDING"),
		},
		{
			name:          "error: ticket not found",
			err:           pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: unknown status stored",
			row:           ticketRow(id, "REFUNDED"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newTicketRepo(t)
			mockQueries.EXPECT().GetTicketForUpdate(ctx, mockDB, id).Return(tc.row, tc.err)

			tk, err := repo.LockByID(ctx, mockDB, id)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ticket.StatusPending, tk.Status())
			assert.Equal(t, 2, tk.Quantity().Int())
			assert.Nil(t, tk.Code())
			assert.False(t, tk.IsUsed())
		})
	}
}

func TestTicketRepository_LockForRedemption(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newTicketRepo(t)
	code, err := ticket.NormalizeCode("tkt-ab3k9z")
	require.NoError(t, err)

	row := sqlc.GetRedemptionTicketForUpdateRow{
		ID:        uuid.New(),
		Status:    "PAID",
		Quantity:  4,
		TeamHome:  "Nepal",
		TeamAway:  "India",
		Venue:     "Dasharath Stadium",
		StartTime: pgconv.TimeToPgtype(startTime),
		BuyerName: "Sita",
	}
	mockQueries.EXPECT().GetRedemptionTicketForUpdate(ctx, mockDB, pgconv.StringToPgtype("TKT-AB3K9Z")).Return(row, nil)

	snap, err := repo.LockForRedemption(ctx, mockDB, code)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusPaid, snap.Status)
	assert.Equal(t, 4, snap.Quantity)
	assert.Equal(t, "Sita", snap.BuyerName)
	assert.Nil(t, snap.UsedAt)

	mockQueries.EXPECT().GetRedemptionTicketForUpdate(ctx, mockDB, gomock.Any()).
		Return(sqlc.GetRedemptionTicketForUpdateRow{}, pgx.ErrNoRows)
	_, err = repo.LockForRedemption(ctx, mockDB, code)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestTicketRepository_Transition(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	code, err := ticket.NormalizeCode("TKT-7QW2RX")
	require.NoError(t, err)

	testCases := []struct {
		name          string
		code          *ticket.Code
		setupMock     func(*repositorymock.MockTicketWriteQueries, sqlc.DBTX)
		wantOK        bool
		expectedError bool
	}{
		{
			name: "success: pending to paid with code",
			code: &code,
			setupMock: func(mock *repositorymock.MockTicketWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().TransitionTicket(ctx, tx, sqlc.TransitionTicketParams{
					ToStatus: "PAID",
					Code:     pgconv.StringToPgtype("TKT-7QW2RX"),
					ID:       id,
				}).Return(ticketRow(id, "PAID"), nil)
			},
			wantOK: true,
		},
		{
			name: "lost race: ticket no longer pending",
			setupMock: func(mock *repositorymock.MockTicketWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().TransitionTicket(ctx, tx, sqlc.TransitionTicketParams{ToStatus: "PAID", ID: id}).
					Return(sqlc.Tickets{}, pgx.ErrNoRows)
			},
		},
		{
			name: "error: code collides with unique index",
			code: &code,
			setupMock: func(mock *repositorymock.MockTicketWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().TransitionTicket(ctx, tx, gomock.Any()).Return(sqlc.Tickets{}, dupKeyErr)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newTicketRepo(t)
			tc.setupMock(mockQueries, mockDB)

			ok, err := repo.Transition(ctx, mockDB, id, ticket.StatusPaid, tc.code)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestTicketRepository_MarkUsed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	at := time.Date(2026, 11, 20, 14, 5, 0, 0, time.UTC)
	repo, mockQueries, mockDB := newTicketRepo(t)

	mockQueries.EXPECT().MarkTicketUsed(ctx, mockDB, sqlc.MarkTicketUsedParams{UsedAt: pgconv.TimeToPgtype(at), ID: id}).
		Return(pgconv.TimeToPgtype(at), nil)
	ok, err := repo.MarkUsed(ctx, mockDB, id, at)
	require.NoError(t, err)
	assert.True(t, ok)

	mockQueries.EXPECT().MarkTicketUsed(ctx, mockDB, gomock.Any()).Return(pgtype.Timestamptz{}, pgx.ErrNoRows)
	ok, err = repo.MarkUsed(ctx, mockDB, id, at)
	require.NoError(t, err)
	assert.False(t, ok, "already used ticket must not be marked twice")

	mockQueries.EXPECT().MarkTicketUsed(ctx, mockDB, gomock.Any()).Return(pgtype.Timestamptz{}, errors.New("timeout"))
	_, err = repo.MarkUsed(ctx, mockDB, id, at)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestTicketRepository_CodeExists(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newTicketRepo(t)
	code, err := ticket.NormalizeCode("TKT-000001")
	require.NoError(t, err)

	mockQueries.EXPECT().TicketCodeExists(ctx, mockDB, pgconv.StringToPgtype("TKT-000001")).Return(true, nil)
	exists, err := repo.CodeExists(ctx, mockDB, code)
	require.NoError(t, err)
	assert.True(t, exists)

	mockQueries.EXPECT().TicketCodeExists(ctx, mockDB, gomock.Any()).Return(false, errors.New("timeout"))
	_, err = repo.CodeExists(ctx, mockDB, code)
	assert.Error(t, err)
}

func TestTicketRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name    string
		rows    int64
		err     error
		want    bool
		wantErr bool
	}{
		{name: "deleted", rows: 1, want: true},
		{name: "nothing to delete", rows: 0, want: false},
		{name: "database failure", err: errors.New("connection refused"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newTicketRepo(t)
			mockQueries.EXPECT().DeleteTicket(ctx, mockDB, id).Return(tc.rows, tc.err)

			deleted, err := repo.Delete(ctx, mockDB, id)

			if tc.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, deleted)
		})
	}
}
