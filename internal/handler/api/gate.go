package api

import (
	"net/http"

	reqdto "goalkick/internal/handler/dto/request"
	resdto "goalkick/internal/handler/dto/response"
	"goalkick/internal/handler/httperr"
	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GateHandler struct {
	cmds commands.RedemptionCommands
	q    queries.TicketQueries
}

func NewGateHandler(cmds commands.RedemptionCommands, q queries.TicketQueries) *GateHandler {
	return &GateHandler{cmds: cmds, q: q}
}

// @Summary Redeem ticket
// @Description Scans a code at the gate. Always answers 200 with one of ENTER, ALREADY_USED, UNPAID, INVALID.
// @Tags gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateTicketRequest true "Scanned code"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/gate/validate [post]
func (h *GateHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result := h.cmds.Redeem(c.Request.Context(), req.Code)
	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}

// @Summary Quick code check
// @Description Read-only lookup used before redemption; does not mark the ticket used
// @Tags gate
// @Produce json
// @Security BearerAuth
// @Param code path string true "Redemption code"
// @Success 200 {object} resdto.CodeCheckResponse
// @Failure 401 {object} httperr.Response
// @Router /api/gate/validate/{code} [get]
func (h *GateHandler) Check(c *gin.Context) {
	check, err := h.q.CheckCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}
