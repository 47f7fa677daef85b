package readstore

import (
	"context"

	"goalkick/internal/infra"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"
	"goalkick/internal/usecase/shared"
)

type StaffReadQueries interface {
	GetStaffByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Staff, error)
}

type StaffReadStore struct {
	queries StaffReadQueries
	db      sqlc.DBTX
}

func NewStaffReadStore(queries StaffReadQueries, db sqlc.DBTX) *StaffReadStore {
	return &StaffReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StaffReadStore) FindByEmail(ctx context.Context, email string) (*shared.StaffSnapshot, error) {
	row, err := r.queries.GetStaffByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff member by email", err)
	}
	return &shared.StaffSnapshot{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		IsActive:     row.IsActive,
	}, nil
}
