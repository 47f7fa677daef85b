package shared

import (
	"context"
	"time"

	"goalkick/internal/domain/buyer"
	"goalkick/internal/domain/match"
	"goalkick/internal/domain/payment"
	"goalkick/internal/domain/staff"
	"goalkick/internal/domain/ticket"
	sqlc "goalkick/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Matches() MatchRepository
	Tickets() TicketRepository
	Payments() PaymentRepository
	Buyers() BuyerRepository
	Staff() StaffRepository
	Reads() CommandReads
	DB() sqlc.DBTX
	// Savepoint runs fn inside a nested savepoint. When fn fails only its own
	// writes are rolled back and the outer transaction stays usable.
	Savepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

type CommandReads interface {
	StaffByEmail(ctx context.Context, email staff.Email) (*StaffSnapshot, error)
	TicketCodeExists(ctx context.Context, code ticket.Code) (bool, error)
	MatchByID(ctx context.Context, id uuid.UUID) (*MatchSnapshot, error)
}

// MatchRepository is the inventory ledger. Every method runs on the caller's
// transaction so seat changes commit or roll back with the ticket change.
type MatchRepository interface {
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*match.Match, error)
	// ReserveSeats returns ok=false when the match is inactive or short of seats.
	ReserveSeats(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, qty int) (remaining int, ok bool, err error)
	ReleaseSeats(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, qty int) (int, error)
	Create(ctx context.Context, tx sqlc.DBTX, m *match.Match) error
	SetActive(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, active bool) (*match.Match, error)
}

type TicketRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *ticket.Ticket) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ticket.Ticket, error)
	LockForRedemption(ctx context.Context, tx sqlc.DBTX, code ticket.Code) (*RedemptionSnapshot, error)
	// Transition moves a PENDING ticket to the target status. It reports false,
	// without error, when the ticket was no longer PENDING.
	Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, to ticket.Status, code *ticket.Code) (bool, error)
	// MarkUsed sets used_at only on a PAID ticket that has not been used.
	MarkUsed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error)
	CodeExists(ctx context.Context, tx sqlc.DBTX, code ticket.Code) (bool, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID, amount decimal.Decimal) error
	LockByTicket(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID) (*PaymentSnapshot, error)
	FindByExternalRef(ctx context.Context, tx sqlc.DBTX, ref payment.ExternalRef) (*PaymentSnapshot, error)
	Settle(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID, status payment.Status, ref *payment.ExternalRef, payload []byte) error
	SubmitReference(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID, ref payment.ExternalRef) error
}

type BuyerRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, phone buyer.Phone, name buyer.Name) (uuid.UUID, error)
}

type StaffRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Upsert(ctx context.Context, tx sqlc.DBTX, email staff.Email, passwordHash string, role staff.Role) (uuid.UUID, error)
}
