package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
)

var ErrSessionNotFound = errors.New("session not found")

const keyPrefix = "session:"

// client is the part of the wbf redis client the repository uses.
type client interface {
	SetEX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	Unlink(ctx context.Context, keys ...string) *redis.IntCmd
}

// Repository keeps admin sessions in Redis, keyed by token.
type Repository struct {
	rdb      client
	strategy retry.Strategy
}

// NewRepository creates a session repository over a Redis client.
func NewRepository(rdb client, strategy retry.Strategy) *Repository {
	return &Repository{rdb: rdb, strategy: strategy}
}

// SaveSession stores the admin id under token for ttl.
func (r *Repository) SaveSession(ctx context.Context, token string, adminID int64, ttl time.Duration) error {
	err := retry.Do(func() error {
		return r.rdb.SetEX(ctx, keyPrefix+token, adminID, ttl).Err()
	}, r.strategy)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession returns the admin id of a live session.
func (r *Repository) GetSession(ctx context.Context, token string) (int64, error) {
	val, err := r.rdb.GetWithRetry(ctx, r.strategy, keyPrefix+token)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}

		return 0, fmt.Errorf("failed to get session: %w", err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse session value: %w", err)
	}

	return id, nil
}

// DeleteSession drops a session. Deleting an unknown token is not an error.
func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	if err := r.rdb.Unlink(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
