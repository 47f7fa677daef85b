package components

import (
	"goalkick/internal/handler"
	"goalkick/internal/handler/api"
	"goalkick/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMatchHandler,
		api.NewTicketHandler,
		api.NewPaymentHandler,
		api.NewGateHandler,
		api.NewAdminHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	match *api.MatchHandler,
	ticket *api.TicketHandler,
	payment *api.PaymentHandler,
	gate *api.GateHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Match:   match,
		Ticket:  ticket,
		Payment: payment,
		Gate:    gate,
		Admin:   admin,
	}
}
