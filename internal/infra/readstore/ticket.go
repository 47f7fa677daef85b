package readstore

import (
	"context"
	"strings"

	"goalkick/internal/infra"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"
	"goalkick/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TicketReadQueries interface {
	GetTicketViewByCode(ctx context.Context, db sqlc.DBTX, code pgtype.Text) (sqlc.GetTicketViewByCodeRow, error)
	GetTicketViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetTicketViewByIDRow, error)
	ListTicketViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTicketViewsParams) ([]sqlc.ListTicketViewsRow, error)
	TicketCodeExists(ctx context.Context, db sqlc.DBTX, code pgtype.Text) (bool, error)
}

type TicketReadStore struct {
	queries TicketReadQueries
	db      sqlc.DBTX
}

func NewTicketReadStore(queries TicketReadQueries, db sqlc.DBTX) *TicketReadStore {
	return &TicketReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TicketReadStore) FindByCode(ctx context.Context, code string) (*queries.TicketView, error) {
	row, err := r.queries.GetTicketViewByCode(ctx, r.db, pgconv.StringToPgtype(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get ticket view by code", err)
	}
	return toTicketView(ticketViewRow(row))
}

func (r *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	row, err := r.queries.GetTicketViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get ticket view by id", err)
	}
	return toTicketView(ticketViewRow(row))
}

// likeEscaper neutralises ILIKE wildcards; backslash is the default LIKE escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (r *TicketReadStore) List(ctx context.Context, filter queries.TicketFilter) ([]*queries.TicketView, error) {
	var search *string
	if filter.Search != nil {
		s := likeEscaper.Replace(*filter.Search)
		search = &s
	}
	params := sqlc.ListTicketViewsParams{
		Status:   pgconv.StringPtrToPgtype(filter.Status),
		MatchID:  pgconv.UUIDPtrToPgtype(filter.MatchID),
		Search:   pgconv.StringPtrToPgtype(search),
		RowLimit: int32(filter.Limit), // #nosec G115 -- capped by the query layer
	}
	rows, err := r.queries.ListTicketViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets", err)
	}

	result := make([]*queries.TicketView, 0, len(rows))
	for _, row := range rows {
		v, err := toTicketView(ticketViewRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *TicketReadStore) CodeExists(ctx context.Context, code string) (bool, error) {
	exists, err := r.queries.TicketCodeExists(ctx, r.db, pgconv.StringToPgtype(code))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ticket code", err)
	}
	return exists, nil
}

// sqlc emits one row type per query; the three view queries share columns.
type ticketViewRow sqlc.GetTicketViewByIDRow

func toTicketView(row ticketViewRow) (*queries.TicketView, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid ticket amount", err)
	}
	return &queries.TicketView{
		ID:            row.ID,
		MatchID:       row.MatchID,
		Quantity:      row.Quantity,
		TotalAmount:   total,
		Status:        row.Status,
		Code:          pgconv.StringPtrFromPgtype(row.Code),
		UsedAt:        pgconv.TimePtrFromPgtype(row.UsedAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		TeamHome:      row.TeamHome,
		TeamAway:      row.TeamAway,
		Venue:         row.Venue,
		StartTime:     pgconv.TimeFromPgtype(row.StartTime),
		BuyerName:     row.BuyerName,
		BuyerPhone:    row.BuyerPhone,
		PaymentStatus: pgconv.StringPtrFromPgtype(row.PaymentStatus),
		ExternalRef:   pgconv.StringPtrFromPgtype(row.ExternalRef),
	}, nil
}
