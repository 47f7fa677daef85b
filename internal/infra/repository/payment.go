package repository

import (
	"context"

	"goalkick/internal/domain/payment"
	"goalkick/internal/infra"
	"goalkick/internal/infra/repository/converter"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payments, error)
	GetPaymentByTicketForUpdate(ctx context.Context, db sqlc.DBTX, ticketID uuid.UUID) (sqlc.Payments, error)
	GetPaymentByExternalRef(ctx context.Context, db sqlc.DBTX, externalRef pgtype.Text) (sqlc.Payments, error)
	SettlePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.SettlePaymentParams) (sqlc.Payments, error)
	SubmitPaymentReference(ctx context.Context, db sqlc.DBTX, arg sqlc.SubmitPaymentReferenceParams) (sqlc.Payments, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID, amount decimal.Decimal) error {
	_, err := r.queries.CreatePayment(ctx, tx, sqlc.CreatePaymentParams{
		TicketID: ticketID,
		Amount:   pgconv.DecimalToNumeric(amount),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) LockByTicket(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID) (*shared.PaymentSnapshot, error) {
	row, err := r.queries.GetPaymentByTicketForUpdate(ctx, tx, ticketID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return toPaymentSnapshot(row)
}

func (r *PaymentRepository) FindByExternalRef(ctx context.Context, tx sqlc.DBTX, ref payment.ExternalRef) (*shared.PaymentSnapshot, error) {
	row, err := r.queries.GetPaymentByExternalRef(ctx, tx, pgconv.StringToPgtype(ref.String()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment by reference", err)
	}
	return toPaymentSnapshot(row)
}

// Settle records the verification outcome. A nil ref keeps the stored one.
func (r *PaymentRepository) Settle(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID, status payment.Status, ref *payment.ExternalRef, payload []byte) error {
	params := sqlc.SettlePaymentParams{
		Status:              status.String(),
		VerificationPayload: payload,
		TicketID:            ticketID,
	}
	if ref != nil {
		params.ExternalRef = pgconv.StringToPgtype(ref.String())
	}
	if _, err := r.queries.SettlePayment(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to settle payment", err)
	}
	return nil
}

func (r *PaymentRepository) SubmitReference(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID, ref payment.ExternalRef) error {
	_, err := r.queries.SubmitPaymentReference(ctx, tx, sqlc.SubmitPaymentReferenceParams{
		TicketID:    ticketID,
		ExternalRef: pgconv.StringToPgtype(ref.String()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to submit payment reference", err)
	}
	return nil
}

func toPaymentSnapshot(row sqlc.Payments) (*shared.PaymentSnapshot, error) {
	snap, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment", err)
	}
	return snap, nil
}
