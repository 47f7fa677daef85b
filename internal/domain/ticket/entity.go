package ticket

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("unit price must not be negative")

// Ticket is one purchase of 1..10 seats for a single match.
type Ticket struct {
	id          uuid.UUID
	matchID     uuid.UUID
	buyerID     uuid.UUID
	quantity    Quantity
	totalAmount decimal.Decimal
	status      Status
	code        *Code
	usedAt      *time.Time
	createdAt   time.Time
}

// NewTicket freezes total_amount at price x quantity; later price edits on
// the match never change what this buyer owes.
func NewTicket(matchID, buyerID uuid.UUID, qty Quantity, unitPrice decimal.Decimal, now time.Time) (*Ticket, error) {
	if unitPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}
	return &Ticket{
		id:          uuid.New(),
		matchID:     matchID,
		buyerID:     buyerID,
		quantity:    qty,
		totalAmount: unitPrice.Mul(decimal.NewFromInt(int64(qty.Int()))),
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func Reconstruct(id, matchID, buyerID uuid.UUID, qty int, total decimal.Decimal, status Status, code *string, usedAt *time.Time, createdAt time.Time) *Ticket {
	t := &Ticket{
		id:          id,
		matchID:     matchID,
		buyerID:     buyerID,
		quantity:    Quantity{value: qty},
		totalAmount: total,
		status:      status,
		usedAt:      usedAt,
		createdAt:   createdAt,
	}
	if code != nil {
		t.code = &Code{value: *code}
	}
	return t
}

func (t *Ticket) ID() uuid.UUID                { return t.id }
func (t *Ticket) MatchID() uuid.UUID           { return t.matchID }
func (t *Ticket) BuyerID() uuid.UUID           { return t.buyerID }
func (t *Ticket) Quantity() Quantity           { return t.quantity }
func (t *Ticket) TotalAmount() decimal.Decimal { return t.totalAmount }
func (t *Ticket) Status() Status               { return t.status }
func (t *Ticket) Code() *Code                  { return t.code }
func (t *Ticket) UsedAt() *time.Time           { return t.usedAt }
func (t *Ticket) CreatedAt() time.Time         { return t.createdAt }
func (t *Ticket) IsUsed() bool                 { return t.usedAt != nil }

// AmountMatches compares a gateway-reported amount against the frozen total.
// Scale differences ("1000" vs "1000.00") are not a mismatch.
func (t *Ticket) AmountMatches(amount decimal.Decimal) bool {
	return t.totalAmount.Equal(amount)
}
