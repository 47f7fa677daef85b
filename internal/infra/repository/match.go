package repository

import (
	"context"

	"goalkick/internal/domain/match"
	"goalkick/internal/infra"
	"goalkick/internal/infra/repository/converter"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MatchWriteQueries interface {
	CreateMatch(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMatchParams) (sqlc.Matches, error)
	GetMatchForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Matches, error)
	ReserveSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveSeatsParams) (int32, error)
	ReleaseSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSeatsParams) (int32, error)
	SetMatchActive(ctx context.Context, db sqlc.DBTX, arg sqlc.SetMatchActiveParams) (sqlc.Matches, error)
}

type MatchRepository struct {
	queries MatchWriteQueries
	db      sqlc.DBTX
}

func NewMatchRepository(queries MatchWriteQueries, db sqlc.DBTX) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MatchRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*match.Match, error) {
	row, err := r.queries.GetMatchForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock match", err)
	}
	m, err := converter.MatchFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert match", err)
	}
	return m, nil
}

func (r *MatchRepository) ReserveSeats(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, qty int) (int, bool, error) {
	remaining, err := r.queries.ReserveSeats(ctx, tx, sqlc.ReserveSeatsParams{
		Quantity: int32(qty), // #nosec G115 -- quantity is 1..10
		ID:       id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to reserve seats", err)
	}
	return int(remaining), true, nil
}

func (r *MatchRepository) ReleaseSeats(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, qty int) (int, error) {
	remaining, err := r.queries.ReleaseSeats(ctx, tx, sqlc.ReleaseSeatsParams{
		Quantity: int32(qty), // #nosec G115 -- quantity is 1..10
		ID:       id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release seats", err)
	}
	return int(remaining), nil
}

func (r *MatchRepository) Create(ctx context.Context, tx sqlc.DBTX, m *match.Match) error {
	if _, err := r.queries.CreateMatch(ctx, tx, converter.MatchToCreateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to create match", err)
	}
	return nil
}

func (r *MatchRepository) SetActive(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, active bool) (*match.Match, error) {
	row, err := r.queries.SetMatchActive(ctx, tx, sqlc.SetMatchActiveParams{ID: id, IsActive: active})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update match status", err)
	}
	m, err := converter.MatchFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert match", err)
	}
	return m, nil
}
