package bootstrap

import (
	"goalkick/internal/handler"
	"goalkick/internal/infra/metrics"
	"goalkick/internal/pkg/config"
	"goalkick/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) commands.Recorder { return m },
		NewMetricsHandler,
	),
)

func NewMetricsHandler(cfg config.Config, m *metrics.Metrics) handler.MetricsHandler {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return m.Handler()
}
