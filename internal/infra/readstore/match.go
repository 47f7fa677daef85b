package readstore

import (
	"context"

	"goalkick/internal/infra"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"
	"goalkick/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchReadQueries interface {
	GetMatch(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Matches, error)
	ListMatches(ctx context.Context, db sqlc.DBTX, activeOnly bool) ([]sqlc.Matches, error)
}

type MatchReadStore struct {
	queries MatchReadQueries
	db      sqlc.DBTX
}

func NewMatchReadStore(queries MatchReadQueries, db sqlc.DBTX) *MatchReadStore {
	return &MatchReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MatchReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MatchView, error) {
	row, err := r.queries.GetMatch(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("match not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get match", err)
	}
	return toMatchView(row)
}

func (r *MatchReadStore) List(ctx context.Context, activeOnly bool) ([]*queries.MatchView, error) {
	rows, err := r.queries.ListMatches(ctx, r.db, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list matches", err)
	}
	result := make([]*queries.MatchView, 0, len(rows))
	for _, row := range rows {
		v, err := toMatchView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func toMatchView(row sqlc.Matches) (*queries.MatchView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid match price", err)
	}
	return &queries.MatchView{
		ID:             row.ID,
		TeamHome:       row.TeamHome,
		TeamAway:       row.TeamAway,
		Venue:          row.Venue,
		StartTime:      pgconv.TimeFromPgtype(row.StartTime),
		Price:          price,
		TotalSeats:     row.TotalSeats,
		AvailableSeats: row.AvailableSeats,
		IsActive:       row.IsActive,
	}, nil
}
