package response

import (
	"goalkick/internal/usecase/commands"

	"github.com/google/uuid"
)

type SettlementResponse struct {
	Outcome  string    `json:"outcome"`
	TicketID uuid.UUID `json:"ticket_id"`
	Status   string    `json:"status"`
	Code     *string   `json:"code,omitempty"`
	Reason   string    `json:"reason,omitempty"`
}

func FromSettlementResult(r *commands.SettlementResult) *SettlementResponse {
	return &SettlementResponse{
		Outcome:  string(r.Outcome),
		TicketID: r.TicketID,
		Status:   r.Status.String(),
		Code:     r.Code,
		Reason:   r.Reason,
	}
}

type SubmissionResponse struct {
	TicketID      uuid.UUID `json:"ticket_id"`
	PaymentStatus string    `json:"payment_status"`
	ExternalRef   string    `json:"external_ref"`
	Message       string    `json:"message"`
}

func FromSubmissionResult(r *commands.SubmissionResult) *SubmissionResponse {
	msg := "Payment reference submitted. Your ticket will be issued once the payment is verified."
	if r.Unchanged {
		msg = "Payment reference already submitted."
	}
	return &SubmissionResponse{
		TicketID:      r.TicketID,
		PaymentStatus: r.PaymentStatus.String(),
		ExternalRef:   r.ExternalRef,
		Message:       msg,
	}
}
