package api

import (
	"net/http"

	resdto "goalkick/internal/handler/dto/response"
	"goalkick/internal/handler/httperr"
	"goalkick/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	q queries.MatchQueries
}

func NewMatchHandler(q queries.MatchQueries) *MatchHandler {
	return &MatchHandler{q: q}
}

// @Summary List matches
// @Description Active matches open for booking, soonest first
// @Tags matches
// @Produce json
// @Success 200 {array} resdto.MatchResponse
// @Failure 500 {object} httperr.Response
// @Router /api/matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	views, err := h.q.ListMatches(c.Request.Context(), true)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMatchViews(views))
}
