package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore is a Redis-backed allow-list of live bearer tokens.
//
// Key layout:
//
//	token:<jti>        → user id, expires with the JWT
//	user_tokens:<id>   → set of jtis currently live for the user
//
// A token is valid only while its token:<jti> key exists. Logout deletes
// every key in the user's set, revoking all of the user's tokens at once;
// a revoked token can never become live again.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save registers a freshly minted token id for the user. Both keys expire
// with the JWT so the store never holds dead entries.
func (s *TokenStore) Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.tokenKey(tokenID), userID, ttl)
	pipe.SAdd(ctx, s.userKey(userID), tokenID)
	pipe.Expire(ctx, s.userKey(userID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// IsLive reports whether the token id has been issued and not revoked.
func (s *TokenStore) IsLive(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.tokenKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("token check: %w", err)
	}
	return n > 0, nil
}

// RevokeAll removes every live token of the user.
func (s *TokenStore) RevokeAll(ctx context.Context, userID string) error {
	tokenIDs, err := s.client.SMembers(ctx, s.userKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}

	keys := make([]string, 0, len(tokenIDs)+1)
	for _, id := range tokenIDs {
		keys = append(keys, s.tokenKey(id))
	}
	keys = append(keys, s.userKey(userID))

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

func (s *TokenStore) tokenKey(tokenID string) string {
	return "token:" + tokenID
}

func (s *TokenStore) userKey(userID string) string {
	return "user_tokens:" + userID
}
