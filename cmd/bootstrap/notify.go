package bootstrap

import (
	"context"
	"log/slog"

	"goalkick/internal/infra/metrics"
	"goalkick/internal/infra/notify"
	"goalkick/internal/pkg/config"
	"goalkick/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, rdb *redis.Client, m *metrics.Metrics) *notify.Dispatcher {
	var sinks []notify.Sink
	if rdb != nil {
		sinks = append(sinks, notify.NewRedisSink(rdb, cfg.Redis.NotifyChannel))
	}
	if cfg.Notify.TelegramToken != "" && cfg.Notify.TelegramChatID != 0 {
		tg, err := notify.NewTelegramSink(cfg.Notify.TelegramToken, cfg.Notify.TelegramChatID)
		if err != nil {
			// admin alerts are optional; the service runs without them
			slog.Warn("telegram sink disabled", "error", err)
		} else {
			sinks = append(sinks, tg)
		}
	}
	if len(sinks) == 0 {
		slog.Warn("no notification sinks configured, events are only logged")
		sinks = append(sinks, notify.LogSink{})
	}

	d := notify.NewDispatcher(cfg.Notify.QueueSize, cfg.Notify.PublishTimeout, notify.Hooks{
		Dropped:   m.NotificationDropped,
		Delivered: m.NotificationDelivered,
	}, sinks...)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Close(ctx)
		},
	})
	return d
}
