package request

import (
	"strings"

	"github.com/google/uuid"
)

type ConfirmPaymentRequest struct {
	TicketID      uuid.UUID `json:"ticket_id" binding:"required"`
	TransactionID string    `json:"transaction_id" binding:"required"`
}

// GatewaySuccessQuery is the redirect eSewa sends after a completed payment.
type GatewaySuccessQuery struct {
	OID    string `form:"oid"`
	PID    string `form:"pid"`
	Amount string `form:"amt"`
	RefID  string `form:"refId"`
}

func (q GatewaySuccessQuery) OrderID() (uuid.UUID, error) {
	raw := q.OID
	if raw == "" {
		raw = q.PID
	}
	return uuid.Parse(strings.TrimSpace(raw))
}

type GatewayFailureQuery struct {
	OID string `form:"oid"`
	PID string `form:"pid"`
}

func (q GatewayFailureQuery) OrderID() (uuid.UUID, error) {
	raw := q.PID
	if raw == "" {
		raw = q.OID
	}
	return uuid.Parse(strings.TrimSpace(raw))
}
