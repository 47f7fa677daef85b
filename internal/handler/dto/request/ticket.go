package request

import (
	"strings"

	"goalkick/internal/usecase/commands"

	"github.com/google/uuid"
)

// Quantity, phone and name are checked by the domain so the caller gets the
// specific validation message.
type ReserveTicketRequest struct {
	MatchID  uuid.UUID `json:"match_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required"`
	Phone    string    `json:"phone" binding:"required"`
	Name     string    `json:"name" binding:"required"`
}

func (r ReserveTicketRequest) ToCommand() commands.ReserveRequest {
	return commands.ReserveRequest{
		MatchID:  r.MatchID,
		Quantity: r.Quantity,
		Phone:    strings.TrimSpace(r.Phone),
		Name:     strings.TrimSpace(r.Name),
	}
}
