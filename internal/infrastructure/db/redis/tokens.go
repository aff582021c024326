package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
)

// TokenStore keeps short-lived token state in Redis.
// Key formats:
//
//	reset:<token>   → user id, expires with the reset window
//	revoked:<token> → "1", expires when the session token itself would
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// SaveResetToken stores a password-reset token for its user.
func (t *TokenStore) SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := t.client.Set(ctx, resetKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken atomically reads and deletes the token, making it
// single-use. Unknown or expired tokens yield domain.ErrInvalidToken.
func (t *TokenStore) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	userID, err := t.client.GetDel(ctx, resetKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return userID, nil
}

// Revoke denylists a session token until the moment it would expire anyway.
func (t *TokenStore) Revoke(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := t.client.Set(ctx, revokedKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a session token has been logged out.
func (t *TokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := t.client.Exists(ctx, revokedKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func resetKey(token string) string   { return "reset:" + token }
func revokedKey(token string) string { return "revoked:" + token }
