package shared

import (
	"time"

	"goalkick/internal/domain/payment"
	"goalkick/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentSnapshot struct {
	ID          uuid.UUID
	TicketID    uuid.UUID
	Amount      decimal.Decimal
	Status      payment.Status
	ExternalRef *string
}

// HasReference reports whether ref is already stored on this payment.
func (p *PaymentSnapshot) HasReference(ref payment.ExternalRef) bool {
	return p.ExternalRef != nil && *p.ExternalRef == ref.String()
}

// Minimal locked view of a ticket for gate scans
type RedemptionSnapshot struct {
	TicketID  uuid.UUID
	Status    ticket.Status
	Quantity  int
	UsedAt    *time.Time
	TeamHome  string
	TeamAway  string
	Venue     string
	StartTime time.Time
	BuyerName string
}

type StaffSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type MatchSnapshot struct {
	ID        uuid.UUID
	TeamHome  string
	TeamAway  string
	Venue     string
	StartTime time.Time
}

func (m *MatchSnapshot) Label() string {
	return m.TeamHome + " vs " + m.TeamAway
}
