package notify

import (
	"context"
	"encoding/json"

	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

// RedisSink publishes events as JSON on a pub/sub channel the admin
// dashboard subscribes to.
type RedisSink struct {
	client  redis.Cmdable
	channel string
}

func NewRedisSink(client redis.Cmdable, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Publish(ctx context.Context, e commands.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		return errs.Wrapf(err, "publish to %s", s.channel)
	}
	return nil
}
