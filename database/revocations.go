package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=revocations.go -destination=mocks/mock_revocations.go -package=mocks

const revokedTokenKeyPrefix = "revoked_token:"

// RevocationStore remembers session token ids that were logged out before
// they expired.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisConfig holds configuration for the Redis revocation store
type RedisConfig struct {
	RedisClient *redis.Client
}

// RedisRevocations implements RevocationStore with expiring Redis keys.
type RedisRevocations struct {
	client *redis.Client
}

var _ RevocationStore = (*RedisRevocations)(nil)

func NewRedisRevocations(ctx context.Context, cfg *RedisConfig) (*RedisRevocations, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRevocations{client: cfg.RedisClient}, nil
}

// Revoke marks the token id revoked for ttl. A non-positive ttl means the
// token has already expired, so nothing is stored.
func (r *RedisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return errors.New("token id cannot be empty")
	}
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *RedisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := r.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
