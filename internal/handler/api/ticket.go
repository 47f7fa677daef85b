package api

import (
	"net/http"

	reqdto "goalkick/internal/handler/dto/request"
	resdto "goalkick/internal/handler/dto/response"
	"goalkick/internal/handler/httperr"
	"goalkick/internal/pkg/qrcode"
	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	cmds commands.ReservationCommands
	q    queries.TicketQueries
}

func NewTicketHandler(cmds commands.ReservationCommands, q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{cmds: cmds, q: q}
}

// @Summary Reserve tickets
// @Description Holds seats for a match and creates a PENDING ticket awaiting payment
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveTicketRequest true "Reservation request"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/tickets [post]
func (h *TicketHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary Get ticket
// @Description Ticket view by redemption code
// @Tags tickets
// @Produce json
// @Param code path string true "Redemption code"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Router /api/tickets/{code} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Ticket QR code
// @Description PNG QR code of the redemption code
// @Tags tickets
// @Produce png
// @Param code path string true "Redemption code"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /api/tickets/{code}/qr [get]
func (h *TicketHandler) QR(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	if view.Code == nil {
		httperr.AbortWithError(c, http.StatusNotFound, queries.ErrTicketNotFound, "Ticket not found", nil)
		return
	}

	png, err := qrcode.PNG(*view.Code, qrcode.DefaultSize)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render QR code", nil)
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}
