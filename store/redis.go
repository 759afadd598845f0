package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces document keys in Redis.
const DefaultRedisPrefix = "geomesh:doc:"

// Redis stores each document as a string value under prefix+key.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps client. An empty prefix selects DefaultRedisPrefix.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}

	return &Redis{client: client, prefix: prefix}
}

// Save writes doc without expiry.
func (s *Redis) Save(ctx context.Context, key string, doc Document) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("Redis.Save: %w", err)
	}
	b, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("Redis.Save: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+key, b, 0).Err(); err != nil {
		return fmt.Errorf("Redis.Save: %w", err)
	}

	return nil
}

// Load reads and validates the document under key.
func (s *Redis) Load(ctx context.Context, key string) (Document, error) {
	if err := checkKey(key); err != nil {
		return Document{}, fmt.Errorf("Redis.Load: %w", err)
	}
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Document{}, fmt.Errorf("Redis.Load: %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return Document{}, fmt.Errorf("Redis.Load: %w", err)
	}

	return Decode(b)
}

// Delete removes the document under key.
func (s *Redis) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("Redis.Delete: %w", err)
	}
	n, err := s.client.Del(ctx, s.prefix+key).Result()
	if err != nil {
		return fmt.Errorf("Redis.Delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Redis.Delete: %s: %w", key, ErrNotFound)
	}

	return nil
}
