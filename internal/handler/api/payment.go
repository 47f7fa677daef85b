package api

import (
	"net/http"

	reqdto "goalkick/internal/handler/dto/request"
	resdto "goalkick/internal/handler/dto/response"
	"goalkick/internal/handler/httperr"
	"goalkick/internal/infra/gateway"
	"goalkick/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.SettlementCommands
}

func NewPaymentHandler(cmds commands.SettlementCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Submit payment reference
// @Description Manual mode: the buyer submits the wallet transaction id for staff verification
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmPaymentRequest true "Payment reference"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payments/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.SubmitManualReference(c.Request.Context(), req.TicketID, req.TransactionID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmissionResult(result))
}

// @Summary Gateway success callback
// @Description Verifies the transaction with the gateway before the ticket is issued. Replays return the same ticket.
// @Tags payments
// @Produce json
// @Param oid query string false "Order id"
// @Param pid query string false "Product id (order id)"
// @Param amt query string true "Amount"
// @Param refId query string true "Gateway reference"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/payments/success [get]
func (h *PaymentHandler) Success(c *gin.Context) {
	var q reqdto.GatewaySuccessQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid callback parameters", nil)
		return
	}
	orderID, err := q.OrderID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}
	amount, err := gateway.ParseAmount(q.Amount)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
		return
	}

	result, err := h.cmds.HandleGatewayCallback(c.Request.Context(), commands.GatewayCallback{
		OrderID:     orderID,
		ExternalRef: q.RefID,
		Amount:      amount,
	})
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettlementResult(result))
}

// @Summary Gateway failure callback
// @Description The buyer cancelled or the payment failed; seats are released once
// @Tags payments
// @Produce json
// @Param pid query string true "Product id (order id)"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/payments/failure [get]
func (h *PaymentHandler) Failure(c *gin.Context) {
	var q reqdto.GatewayFailureQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid callback parameters", nil)
		return
	}
	orderID, err := q.OrderID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	result, err := h.cmds.HandleGatewayFailure(c.Request.Context(), orderID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettlementResult(result))
}
