// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

package redis

import (
	stdctx "context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vantrong/melodia/internal/platform/constants"
)

// RevocationList tracks actor tokens invalidated before their natural expiry.
//
// Entries carry a TTL equal to the remaining token lifetime, so the list
// cleans itself up — a key that outlives the token it revokes would be dead
// weight.
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList creates a revocation list backed by the given client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke marks a token ID (JWT "jti" claim) as invalid for the given duration.
func (list *RevocationList) Revoke(context stdctx.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}

	key := constants.RedisPrefixRevokedToken + tokenID
	if err := list.client.Set(context, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis: revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token ID has been revoked.
//
// # Failure Mode
//
// Errors are returned rather than swallowed: the middleware fails closed,
// refusing a token it cannot check.
func (list *RevocationList) IsRevoked(context stdctx.Context, tokenID string) (bool, error) {
	key := constants.RedisPrefixRevokedToken + tokenID

	count, err := list.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis: check revocation: %w", err)
	}

	return count > 0, nil
}
