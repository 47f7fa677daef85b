package converter

import (
	"goalkick/internal/domain/payment"
	"goalkick/internal/domain/ticket"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"
	"goalkick/internal/usecase/shared"
)

func TicketToCreateParams(t *ticket.Ticket) sqlc.CreateTicketParams {
	return sqlc.CreateTicketParams{
		ID:          t.ID(),
		MatchID:     t.MatchID(),
		BuyerID:     t.BuyerID(),
		Quantity:    int32(t.Quantity().Int()), // #nosec G115 -- quantity is 1..10
		TotalAmount: pgconv.DecimalToNumeric(t.TotalAmount()),
		CreatedAt:   pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

func TicketFromRow(row sqlc.Tickets) (*ticket.Ticket, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, err
	}
	status, err := ticket.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return ticket.Reconstruct(
		row.ID,
		row.MatchID,
		row.BuyerID,
		int(row.Quantity),
		total,
		status,
		pgconv.StringPtrFromPgtype(row.Code),
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func RedemptionFromRow(row sqlc.GetRedemptionTicketForUpdateRow) (*shared.RedemptionSnapshot, error) {
	status, err := ticket.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return &shared.RedemptionSnapshot{
		TicketID:  row.ID,
		Status:    status,
		Quantity:  int(row.Quantity),
		UsedAt:    pgconv.TimePtrFromPgtype(row.UsedAt),
		TeamHome:  row.TeamHome,
		TeamAway:  row.TeamAway,
		Venue:     row.Venue,
		StartTime: pgconv.TimeFromPgtype(row.StartTime),
		BuyerName: row.BuyerName,
	}, nil
}

func PaymentFromRow(row sqlc.Payments) (*shared.PaymentSnapshot, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return &shared.PaymentSnapshot{
		ID:          row.ID,
		TicketID:    row.TicketID,
		Amount:      amount,
		Status:      status,
		ExternalRef: pgconv.StringPtrFromPgtype(row.ExternalRef),
	}, nil
}
