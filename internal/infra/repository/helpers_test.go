//go:build unit

package repository_test

import (
	"context"
	"time"

	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// mockDBTX satisfies sqlc.DBTX; queries go through the generated mocks.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

var (
	startTime = time.Date(2026, 11, 20, 15, 0, 0, 0, time.UTC)
	createdAt = time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	dupKeyErr = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint", ConstraintName: "payments_external_ref_key"}
)

func matchRow(id uuid.UUID, available int32) sqlc.Matches {
	return sqlc.Matches{
		ID:             id,
		TeamHome:       "Nepal",
		TeamAway:       "India",
		Venue:          "Dasharath Stadium",
		StartTime:      pgconv.TimeToPgtype(startTime),
		Price:          pgconv.DecimalToNumeric(decimal.NewFromInt(500)),
		TotalSeats:     100,
		AvailableSeats: available,
		IsActive:       true,
	}
}

func ticketRow(id uuid.UUID, status string) sqlc.Tickets {
	return sqlc.Tickets{
		ID:          id,
		MatchID:     uuid.New(),
		BuyerID:     uuid.New(),
		Quantity:    2,
		TotalAmount: pgconv.DecimalToNumeric(decimal.NewFromInt(1000)),
		Status:      status,
		CreatedAt:   pgconv.TimeToPgtype(createdAt),
	}
}

func paymentRow(ticketID uuid.UUID, status string, ref *string) sqlc.Payments {
	return sqlc.Payments{
		ID:          uuid.New(),
		TicketID:    ticketID,
		Amount:      pgconv.DecimalToNumeric(decimal.NewFromInt(1000)),
		Status:      status,
		ExternalRef: pgconv.StringPtrToPgtype(ref),
		CreatedAt:   pgconv.TimeToPgtype(createdAt),
	}
}
