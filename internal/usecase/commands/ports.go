package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentVerifier confirms a gateway transaction out of band. Verified is
// true only on an explicit success answer; transport errors are returned as
// err and treated by callers as a failed verification.
type PaymentVerifier interface {
	Verify(ctx context.Context, req VerificationRequest) (*Verification, error)
}

type VerificationRequest struct {
	OrderID     uuid.UUID
	ExternalRef string
	Amount      decimal.Decimal
}

type Verification struct {
	Verified bool
	Raw      []byte
	Reason   string
}

type CheckoutMode string

const (
	CheckoutMerchant CheckoutMode = "merchant"
	CheckoutManual   CheckoutMode = "manual"
)

// Checkout tells the buyer how to pay for a freshly reserved ticket.
type Checkout struct {
	Mode       CheckoutMode
	PaymentURL string
	Fields     map[string]string
	PersonalID string
}

type CheckoutBuilder interface {
	Checkout(ticketID uuid.UUID, amount decimal.Decimal) Checkout
}

type EventType string

const (
	EventTicketSold       EventType = "ticket_sold"
	EventPaymentSubmitted EventType = "payment_submitted"
)

type Event struct {
	Type      EventType       `json:"type"`
	TicketID  uuid.UUID       `json:"ticket_id"`
	Amount    decimal.Decimal `json:"amount"`
	Quantity  int             `json:"quantity"`
	Match     string          `json:"match"`
	Buyer     string          `json:"buyer,omitempty"`
	Reference string          `json:"reference,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Notifier delivers events after commit. It must not block the caller and
// never reports failures.
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// Recorder counts business outcomes for metrics.
type Recorder interface {
	Reservation(result string)
	Settlement(path string, outcome string)
	Redemption(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) Reservation(string)        {}
func (nopRecorder) Settlement(string, string) {}
func (nopRecorder) Redemption(string)         {}

func NopRecorder() Recorder { return nopRecorder{} }
