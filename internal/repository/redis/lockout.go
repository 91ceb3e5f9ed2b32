// Package redis keeps short-lived security counters in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/marketplace-auth/internal/model"
)

var _ model.LockoutCounter = (*LockoutCounter)(nil)

// ErrUnavailable is returned when Redis cannot be reached.
var ErrUnavailable = errors.New("lockout counter unavailable")

// LockoutCounter counts failed logins per user inside a rolling window.
type LockoutCounter struct {
	client    goredis.UniversalClient
	threshold int64
	window    time.Duration
}

// NewLockoutCounter creates a counter reporting when threshold failures
// happened within window.
func NewLockoutCounter(client goredis.UniversalClient, threshold int, window time.Duration) *LockoutCounter {
	return &LockoutCounter{
		client:    client,
		threshold: int64(threshold),
		window:    window,
	}
}

func (c *LockoutCounter) key(userID uuid.UUID) string {
	return "lockout:" + userID.String()
}

// RecordFailure increments the user's counter and reports whether the
// threshold has been reached.
func (c *LockoutCounter) RecordFailure(ctx context.Context, userID uuid.UUID) (bool, error) {
	if c.threshold <= 0 {
		return false, nil
	}

	count, err := c.client.Incr(ctx, c.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if count == 1 && c.window > 0 {
		if err := c.client.Expire(ctx, c.key(userID), c.window).Err(); err != nil {
			return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	return count >= c.threshold, nil
}

// Reset clears the user's counter.
func (c *LockoutCounter) Reset(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// NewClient opens a Redis client and checks connectivity.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
