package request

type ValidateTicketRequest struct {
	Code string `json:"code" binding:"required"`
}
