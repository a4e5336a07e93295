package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

// Publish appends a catalog-change event to the stream consumed by the
// search indexer.
func (p *Publisher) Publish(ctx context.Context, action, key string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{
			"action": action,
			"key":    key,
		},
	}).Err()
}
