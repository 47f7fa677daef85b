package bootstrap

import (
	"log/slog"

	"goalkick/internal/infra/gateway"
	"goalkick/internal/infra/metrics"
	"goalkick/internal/pkg/config"
	"goalkick/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(commands.PaymentVerifier), new(commands.CheckoutBuilder)),
		),
	),
)

func NewGatewayClient(cfg config.Config, m *metrics.Metrics) *gateway.Client {
	slog.Info("payment gateway configured", "mode", cfg.Gateway.Mode, "merchant", cfg.Gateway.MerchantCode)
	return gateway.NewClient(cfg.Gateway, gateway.WithObserver(m.VerifyObserved))
}
