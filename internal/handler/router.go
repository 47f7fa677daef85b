package handler

import (
	"net/http"

	"goalkick/internal/domain/staff"
	"goalkick/internal/handler/api"
	"goalkick/internal/handler/middleware"
	"goalkick/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Match   *api.MatchHandler
	Ticket  *api.TicketHandler
	Payment *api.PaymentHandler
	Gate    *api.GateHandler
	Admin   *api.AdminHandler
}

// MetricsHandler is nil when metrics are disabled.
type MetricsHandler http.Handler

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics MetricsHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, metrics)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics MetricsHandler) {
	engine.GET("/health", healthCheck)
	if metrics != nil {
		engine.GET("/metrics", gin.WrapH(metrics))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/matches", Handler: h.Match.List},
			{Method: http.MethodPost, Path: "/tickets", Handler: h.Ticket.Reserve},
			{Method: http.MethodGet, Path: "/tickets/:code", Handler: h.Ticket.Get},
			{Method: http.MethodGet, Path: "/tickets/:code/qr", Handler: h.Ticket.QR},
			{Method: http.MethodPost, Path: "/payments/confirm", Handler: h.Payment.Confirm},
			{Method: http.MethodGet, Path: "/payments/success", Handler: h.Payment.Success},
			{Method: http.MethodGet, Path: "/payments/failure", Handler: h.Payment.Failure},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		gate := apiGroup.Group("/gate")
		gate.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(staff.RoleGatekeeper))
		{
			addRoutes(gate, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: h.Gate.Validate},
				{Method: http.MethodGet, Path: "/validate/:code", Handler: h.Gate.Check},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(staff.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/matches", Handler: h.Admin.CreateMatch},
				{Method: http.MethodPost, Path: "/matches/:id/toggle", Handler: h.Admin.ToggleMatch},
				{Method: http.MethodGet, Path: "/tickets", Handler: h.Admin.ListTickets},
				{Method: http.MethodPost, Path: "/tickets/:id/approve", Handler: h.Admin.Approve},
				{Method: http.MethodPost, Path: "/tickets/:id/reject", Handler: h.Admin.Reject},
				{Method: http.MethodPost, Path: "/tickets/:id/mark-used", Handler: h.Admin.MarkUsed},
				{Method: http.MethodDelete, Path: "/tickets/:id", Handler: h.Admin.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
