//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"goalkick/internal/infra"
	"goalkick/internal/pkg/errs"
	queriesmock "goalkick/internal/testutil/mock/queries"
	"goalkick/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFound() error { return infra.WrapRepoErr("not found", pgx.ErrNoRows) }

func dbFailure() error {
	return infra.WrapRepoErr("query failed", context.DeadlineExceeded, infra.KindDBFailure)
}

func TestMatchQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockMatchReadStore(ctrl)
	q := queries.NewMatchQueries(store)
	ctx := context.Background()

	t.Run("list passes the active filter", func(t *testing.T) {
		views := []*queries.MatchView{{ID: uuid.New(), TeamHome: "Nepal", TeamAway: "India", AvailableSeats: 0}}
		store.EXPECT().List(ctx, true).Return(views, nil)

		got, err := q.ListMatches(ctx, true)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].SoldOut())
	})

	t.Run("list failure", func(t *testing.T) {
		store.EXPECT().List(ctx, false).Return(nil, dbFailure())

		_, err := q.ListMatches(ctx, false)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("missing match", func(t *testing.T) {
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, notFound())

		_, err := q.GetMatch(ctx, id)

		assert.True(t, errs.Is(err, queries.ErrMatchNotFound))
	})
}

func TestTicketQueries_GetByCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockTicketReadStore(ctrl)
	q := queries.NewTicketQueries(store)
	ctx := context.Background()

	t.Run("code is normalized before lookup", func(t *testing.T) {
		view := &queries.TicketView{ID: uuid.New(), Status: "PAID"}
		store.EXPECT().FindByCode(ctx, "TKT-AB3K9Z").Return(view, nil)

		got, err := q.GetByCode(ctx, " tkt-ab3k9z ")

		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("blank code is not found", func(t *testing.T) {
		_, err := q.GetByCode(ctx, "  ")
		assert.True(t, errs.Is(err, queries.ErrTicketNotFound))
	})

	t.Run("unknown code", func(t *testing.T) {
		store.EXPECT().FindByCode(ctx, "NOPE").Return(nil, notFound())

		_, err := q.GetByCode(ctx, "nope")

		assert.True(t, errs.Is(err, queries.ErrTicketNotFound))
	})

	t.Run("database failure", func(t *testing.T) {
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, dbFailure())

		_, err := q.GetByID(ctx, id)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestTicketQueries_CheckCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockTicketReadStore(ctrl)
	q := queries.NewTicketQueries(store)
	ctx := context.Background()

	t.Run("used ticket", func(t *testing.T) {
		used := time.Date(2026, 11, 14, 14, 0, 0, 0, time.UTC)
		store.EXPECT().FindByCode(ctx, "TKT-AB3K9Z").Return(&queries.TicketView{
			Status: "PAID", UsedAt: &used, TeamHome: "Nepal", TeamAway: "India", Quantity: 2, BuyerName: "Ram",
		}, nil)

		got, err := q.CheckCode(ctx, "TKT-AB3K9Z")

		require.NoError(t, err)
		assert.True(t, got.Exists)
		assert.True(t, got.Used)
		assert.Equal(t, "Nepal vs India", got.MatchLabel)
	})

	t.Run("unknown code answers exists=false", func(t *testing.T) {
		store.EXPECT().FindByCode(ctx, "NOTACODE").Return(nil, notFound())

		got, err := q.CheckCode(ctx, "notacode")

		require.NoError(t, err)
		assert.False(t, got.Exists)
		assert.Equal(t, "NOTACODE", got.Code)
	})
}

func TestTicketQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockTicketReadStore(ctrl)
	q := queries.NewTicketQueries(store)
	ctx := context.Background()

	t.Run("limit defaults and clamps", func(t *testing.T) {
		gomock.InOrder(
			store.EXPECT().List(ctx, queries.TicketFilter{Limit: queries.DefaultTicketListLimit}).Return(nil, nil),
			store.EXPECT().List(ctx, queries.TicketFilter{Limit: queries.MaxTicketListLimit}).Return(nil, nil),
		)

		_, err := q.List(ctx, queries.TicketFilter{})
		require.NoError(t, err)
		_, err = q.List(ctx, queries.TicketFilter{Limit: 10_000})
		require.NoError(t, err)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		bad := "USED"

		_, err := q.List(ctx, queries.TicketFilter{Status: &bad})

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
