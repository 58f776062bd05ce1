package auth

import (
	"context"
	"time"

	"github.com/portalhq/jobboard/pkg/kernel"
)

// SessionStore tracks live token IDs so logout can revoke a token before it
// expires. Entries carry the token TTL and vanish on their own.
type SessionStore interface {
	Save(ctx context.Context, tokenID string, userID kernel.UserID, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) error
}
