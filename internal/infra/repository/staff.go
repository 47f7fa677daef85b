package repository

import (
	"context"

	"goalkick/internal/domain/staff"
	"goalkick/internal/infra"
	sqlc "goalkick/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type StaffWriteQueries interface {
	UpdateStaffLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpsertStaff(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertStaffParams) (sqlc.Staff, error)
}

type StaffRepository struct {
	queries StaffWriteQueries
	db      sqlc.DBTX
}

func NewStaffRepository(queries StaffWriteQueries, db sqlc.DBTX) *StaffRepository {
	return &StaffRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.UpdateStaffLastLogin(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to update staff last login", err)
	}
	return nil
}

func (r *StaffRepository) Upsert(ctx context.Context, tx sqlc.DBTX, email staff.Email, passwordHash string, role staff.Role) (uuid.UUID, error) {
	row, err := r.queries.UpsertStaff(ctx, tx, sqlc.UpsertStaffParams{
		Email:        email.Value(),
		PasswordHash: passwordHash,
		Role:         role.String(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert staff member", err)
	}
	return row.ID, nil
}
