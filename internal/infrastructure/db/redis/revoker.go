package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker keeps a token deny-list in Redis.
// Key format: revoked:<token_id>
type Revoker struct {
	client *redis.Client
}

// NewRevoker creates a Revoker wrapping the given Redis client.
func NewRevoker(client *redis.Client) *Revoker {
	return &Revoker{client: client}
}

// Revoke denies tokenID until ttl elapses. Tokens that have already expired
// need no entry.
func (r *Revoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID is on the deny-list.
func (r *Revoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// Ping lets the readiness probe include Redis.
func (r *Revoker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Revoker) key(tokenID string) string {
	return "revoked:" + tokenID
}
