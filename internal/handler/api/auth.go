package api

import (
	"net/http"
	"time"

	reqdto "goalkick/internal/handler/dto/request"
	resdto "goalkick/internal/handler/dto/response"
	"goalkick/internal/handler/httperr"
	"goalkick/internal/pkg/config"
	"goalkick/internal/pkg/cookie"
	"goalkick/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, cfg: cfg}
}

// @Summary Staff login
// @Description Login with email and password. The token is returned and also set as an HttpOnly cookie for the gate scanner page.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Staff logout
// @Description Clears the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}
