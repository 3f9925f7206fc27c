package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// WebhookStore implements ports.WebhookReplayStore. Keys are set with NX so
// concurrent deliveries of the same body record it once.
type WebhookStore struct {
	client goredis.UniversalClient
}

// NewWebhookStore creates a Redis-backed webhook replay store.
func NewWebhookStore(client goredis.UniversalClient) *WebhookStore {
	return &WebhookStore{client: client}
}

// Seen reports whether key was remembered and has not expired.
func (s *WebhookStore) Seen(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis webhook exists: %w", err)
	}
	return n > 0, nil
}

// Remember marks key as processed for ttl. An existing key is left as is.
func (s *WebhookStore) Remember(ctx context.Context, key string, ttl time.Duration) error {
	err := s.client.SetArgs(ctx, key, time.Now().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis webhook remember: %w", err)
	}
	return nil
}
