package response

import (
	"time"

	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketResponse struct {
	ID            uuid.UUID  `json:"id"`
	MatchID       uuid.UUID  `json:"match_id"`
	Match         string     `json:"match"`
	Venue         string     `json:"venue"`
	StartTime     time.Time  `json:"start_time"`
	Quantity      int32      `json:"quantity"`
	TotalAmount   string     `json:"total_amount"`
	Status        string     `json:"status"`
	Code          *string    `json:"code,omitempty"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
	BuyerName     string     `json:"buyer_name"`
	PaymentStatus *string    `json:"payment_status,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromTicketView(v *queries.TicketView) *TicketResponse {
	res := &TicketResponse{}
	copyInto(res, v)
	res.Match = v.MatchLabel()
	return res
}

// AdminTicketResponse adds the fields only staff may see.
type AdminTicketResponse struct {
	TicketResponse
	BuyerPhone  string  `json:"buyer_phone"`
	ExternalRef *string `json:"external_ref,omitempty"`
}

func FromTicketViewsAdmin(views []*queries.TicketView) []*AdminTicketResponse {
	res := make([]*AdminTicketResponse, len(views))
	for i, v := range views {
		res[i] = &AdminTicketResponse{
			TicketResponse: *FromTicketView(v),
			BuyerPhone:     v.BuyerPhone,
			ExternalRef:    v.ExternalRef,
		}
	}
	return res
}

type CheckoutResponse struct {
	Mode       string            `json:"mode"`
	PaymentURL string            `json:"payment_url,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	PersonalID string            `json:"personal_id,omitempty"`
}

type ReserveResponse struct {
	TicketID       uuid.UUID        `json:"ticket_id"`
	MatchID        uuid.UUID        `json:"match_id"`
	Quantity       int              `json:"quantity"`
	TotalAmount    string           `json:"total_amount"`
	Status         string           `json:"status"`
	RemainingSeats int              `json:"remaining_seats"`
	Checkout       CheckoutResponse `json:"checkout"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		TicketID:       r.TicketID,
		MatchID:        r.MatchID,
		Quantity:       r.Quantity,
		TotalAmount:    r.TotalAmount.StringFixed(2),
		Status:         r.Status.String(),
		RemainingSeats: r.RemainingSeats,
		Checkout: CheckoutResponse{
			Mode:       string(r.Checkout.Mode),
			PaymentURL: r.Checkout.PaymentURL,
			Fields:     r.Checkout.Fields,
			PersonalID: r.Checkout.PersonalID,
		},
	}
}

type DeleteTicketResponse struct {
	TicketID      uuid.UUID `json:"ticket_id"`
	Status        string    `json:"status"`
	ReleasedSeats int       `json:"released_seats"`
}

func FromDeleteResult(r *commands.DeleteResult) *DeleteTicketResponse {
	return &DeleteTicketResponse{
		TicketID:      r.TicketID,
		Status:        r.Status.String(),
		ReleasedSeats: r.ReleasedSeats,
	}
}
