package httperr

import (
	"net/http"

	"goalkick/internal/domain/buyer"
	"goalkick/internal/domain/payment"
	"goalkick/internal/domain/ticket"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// Order matters: specific domain sentinels are checked before the generic
// validation mark they are wrapped with.
var mappings = []mapping{
	{ticket.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be between 1 and 10"},
	{buyer.ErrInvalidPhone, http.StatusBadRequest, "Invalid phone number"},
	{buyer.ErrInvalidName, http.StatusBadRequest, "Name is required"},
	{buyer.ErrNameTooLong, http.StatusBadRequest, "Name is too long"},
	{payment.ErrEmptyExternalRef, http.StatusBadRequest, "Transaction reference is required"},
	{payment.ErrExternalRefTooLong, http.StatusBadRequest, "Transaction reference is too long"},
	{commands.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{commands.ErrMatchUnavailable, http.StatusConflict, "Match is not available for booking"},
	{commands.ErrInsufficientSeats, http.StatusConflict, "Not enough seats available"},
	{commands.ErrTicketNotFound, http.StatusNotFound, "Ticket not found"},
	{queries.ErrTicketNotFound, http.StatusNotFound, "Ticket not found"},
	{queries.ErrMatchNotFound, http.StatusNotFound, "Match not found"},
	{commands.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{commands.ErrDuplicateExternalReference, http.StatusConflict, "Transaction reference already used"},
	{commands.ErrAlreadyTerminal, http.StatusConflict, "Ticket is already settled"},
	{commands.ErrCodeExhausted, http.StatusServiceUnavailable, "Could not issue ticket code, please retry"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrStaffInactive, http.StatusForbidden, "Account is disabled"},
}

// Map returns the status and user-facing message for a use case error.
// Unknown errors are internal; their details never reach the client.
func Map(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := Map(err)
	AbortWithError(c, status, err, msg, nil)
}
