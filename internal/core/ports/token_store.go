package ports

import (
	"context"
	"time"
)

// TokenStore tracks the tokens currently live for each user. A token is
// valid only while its id is present in the store; revocation is terminal.
type TokenStore interface {
	// Save registers a freshly minted token id for the user. The entry
	// expires on its own after ttl so the store never outlives the JWT.
	Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	// IsLive reports whether the token id has been issued and not revoked.
	IsLive(ctx context.Context, tokenID string) (bool, error)
	// RevokeAll removes every live token of the user.
	RevokeAll(ctx context.Context, userID string) error
}
