package repository

import (
	"context"
	"time"

	"goalkick/internal/domain/ticket"
	"goalkick/internal/infra"
	"goalkick/internal/infra/repository/converter"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TicketWriteQueries interface {
	CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) (sqlc.Tickets, error)
	GetTicketForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Tickets, error)
	GetRedemptionTicketForUpdate(ctx context.Context, db sqlc.DBTX, code pgtype.Text) (sqlc.GetRedemptionTicketForUpdateRow, error)
	TransitionTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionTicketParams) (sqlc.Tickets, error)
	MarkTicketUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkTicketUsedParams) (pgtype.Timestamptz, error)
	TicketCodeExists(ctx context.Context, db sqlc.DBTX, code pgtype.Text) (bool, error)
	DeleteTicket(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type TicketRepository struct {
	queries TicketWriteQueries
	db      sqlc.DBTX
}

func NewTicketRepository(queries TicketWriteQueries, db sqlc.DBTX) *TicketRepository {
	return &TicketRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TicketRepository) Create(ctx context.Context, tx sqlc.DBTX, t *ticket.Ticket) error {
	if _, err := r.queries.CreateTicket(ctx, tx, converter.TicketToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create ticket", err)
	}
	return nil
}

func (r *TicketRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ticket.Ticket, error) {
	row, err := r.queries.GetTicketForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock ticket", err)
	}
	t, err := converter.TicketFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert ticket", err)
	}
	return t, nil
}

func (r *TicketRepository) LockForRedemption(ctx context.Context, tx sqlc.DBTX, code ticket.Code) (*shared.RedemptionSnapshot, error) {
	row, err := r.queries.GetRedemptionTicketForUpdate(ctx, tx, pgconv.StringToPgtype(code.String()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock ticket for redemption", err)
	}
	snap, err := converter.RedemptionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert redemption ticket", err)
	}
	return snap, nil
}

func (r *TicketRepository) Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, to ticket.Status, code *ticket.Code) (bool, error) {
	params := sqlc.TransitionTicketParams{
		ToStatus: to.String(),
		ID:       id,
	}
	if code != nil {
		params.Code = pgconv.StringToPgtype(code.String())
	}

	if _, err := r.queries.TransitionTicket(ctx, tx, params); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to transition ticket", err)
	}
	return true, nil
}

func (r *TicketRepository) MarkUsed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	_, err := r.queries.MarkTicketUsed(ctx, tx, sqlc.MarkTicketUsedParams{
		UsedAt: pgconv.TimeToPgtype(at),
		ID:     id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to mark ticket used", err)
	}
	return true, nil
}

func (r *TicketRepository) CodeExists(ctx context.Context, tx sqlc.DBTX, code ticket.Code) (bool, error) {
	exists, err := r.queries.TicketCodeExists(ctx, tx, pgconv.StringToPgtype(code.String()))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ticket code", err)
	}
	return exists, nil
}

func (r *TicketRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteTicket(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete ticket", err)
	}
	return n > 0, nil
}
