package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisSink delivers notifications through Redis: each notification is
// pushed onto the recipient's inbox list ("notify:<recipient>") and
// published on the matching channel so a connected notification worker can
// pick it up immediately.
type RedisSink struct {
	client *redis.Client
	prefix string
}

// NewRedisSink creates a Redis-backed sink. Prefix may be empty.
func NewRedisSink(client *redis.Client, prefix string) *RedisSink {
	if prefix == "" {
		prefix = "notify:"
	}
	return &RedisSink{client: client, prefix: prefix}
}

func (r *RedisSink) key(recipientID string) string {
	return r.prefix + recipientID
}

func (r *RedisSink) Deliver(ctx context.Context, n Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := r.client.LPush(ctx, r.key(n.RecipientID), b).Err(); err != nil {
		return err
	}
	return r.client.Publish(ctx, r.key(n.RecipientID), b).Err()
}
