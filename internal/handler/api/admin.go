package api

import (
	"context"
	"net/http"

	reqdto "goalkick/internal/handler/dto/request"
	resdto "goalkick/internal/handler/dto/response"
	"goalkick/internal/handler/httperr"
	"goalkick/internal/handler/middleware"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingStaff = errs.New("authenticated staff missing from context")

type AdminHandler struct {
	cmds    commands.AdminCommands
	tickets queries.TicketQueries
}

func NewAdminHandler(cmds commands.AdminCommands, tickets queries.TicketQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, tickets: tickets}
}

// @Summary Create match
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMatchRequest true "Match"
// @Success 201 {object} resdto.CreateMatchResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/matches [post]
func (h *AdminHandler) CreateMatch(c *gin.Context) {
	var req reqdto.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.CreateMatch(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateMatchResponse{ID: id})
}

// @Summary Toggle match booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.MatchStateResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/matches/{id}/toggle [post]
func (h *AdminHandler) ToggleMatch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	state, err := h.cmds.ToggleMatch(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMatchState(state))
}

// @Summary List tickets
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, PAID, FAILED or REJECTED"
// @Param match_id query string false "Match ID"
// @Param search query string false "Buyer name, phone, code or reference"
// @Param limit query int false "Max rows (default 100, max 500)"
// @Success 200 {array} resdto.AdminTicketResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/tickets [get]
func (h *AdminHandler) ListTickets(c *gin.Context) {
	var q reqdto.ListTicketsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid match id", nil)
		return
	}

	views, err := h.tickets.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketViewsAdmin(views))
}

// @Summary Approve payment
// @Description Marks a PENDING ticket PAID and issues its code. Approving a PAID ticket is a no-op.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/tickets/{id}/approve [post]
func (h *AdminHandler) Approve(c *gin.Context) {
	h.settle(c, h.cmds.ApprovePayment)
}

// @Summary Reject payment
// @Description Marks a PENDING ticket REJECTED and releases its seats once
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/tickets/{id}/reject [post]
func (h *AdminHandler) Reject(c *gin.Context) {
	h.settle(c, h.cmds.RejectPayment)
}

func (h *AdminHandler) settle(c *gin.Context, fn func(ctx context.Context, ticketID, actorID uuid.UUID) (*commands.SettlementResult, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actorID, ok := actor(c)
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), id, actorID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettlementResult(result))
}

// @Summary Mark ticket used
// @Description Manual entry for a PAID ticket, same guard as a gate scan
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/tickets/{id}/mark-used [post]
func (h *AdminHandler) MarkUsed(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actorID, ok := actor(c)
	if !ok {
		return
	}

	result, err := h.cmds.MarkUsed(c.Request.Context(), id, actorID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}

// @Summary Delete ticket
// @Description Seats are released iff the ticket still holds them (PENDING or PAID)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.DeleteTicketResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/tickets/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actorID, ok := actor(c)
	if !ok {
		return
	}

	result, err := h.cmds.DeleteTicket(c.Request.Context(), id, actorID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeleteResult(result))
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func actor(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingStaff, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}
