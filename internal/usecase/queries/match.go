package queries

import (
	"context"

	"goalkick/internal/infra"
	"goalkick/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMatchNotFound = errs.New("match not found")

type MatchReadStore interface {
	List(ctx context.Context, activeOnly bool) ([]*MatchView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MatchView, error)
}

type MatchQueries interface {
	ListMatches(ctx context.Context, activeOnly bool) ([]*MatchView, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*MatchView, error)
}

type matchQueriesImpl struct {
	store MatchReadStore
}

func NewMatchQueries(store MatchReadStore) MatchQueries {
	return &matchQueriesImpl{store: store}
}

func (q *matchQueriesImpl) ListMatches(ctx context.Context, activeOnly bool) ([]*MatchView, error) {
	matches, err := q.store.List(ctx, activeOnly)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return matches, nil
}

func (q *matchQueriesImpl) GetMatch(ctx context.Context, id uuid.UUID) (*MatchView, error) {
	m, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return m, nil
}
