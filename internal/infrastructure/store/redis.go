package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portionwise/backend/internal/domain"
)

// RedisStore is a snapshot store backed by Redis, for deployments where
// last-used inputs should survive server restarts
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed snapshot store from a Redis URL
// (e.g. "redis://localhost:6379/0") and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return &RedisStore{client: client}, nil
}

// Get retrieves a client's last-used input. Missing keys and undecodable
// records both report a snapshot miss.
func (s *RedisStore) Get(ctx context.Context, key string) (*domain.PortionInput, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotMiss
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	var input domain.PortionInput
	if err := json.Unmarshal(payload, &input); err != nil {
		return nil, domain.ErrSnapshotMiss
	}

	return &input, nil
}

// Set stores a client's last-used input with TTL
func (s *RedisStore) Set(ctx context.Context, key string, input *domain.PortionInput, ttl time.Duration) error {
	if input == nil {
		return domain.ErrInvalidRequest
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

// Delete removes a client's snapshot
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Exists checks if a snapshot exists for the key
func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return n > 0, nil
}

// Close releases the underlying Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
