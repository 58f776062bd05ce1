package authinfra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portalhq/jobboard/pkg/errx"
	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps one key per live token, expiring with the token.
type RedisSessionStore struct {
	client *redis.Client
}

var _ auth.SessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, tokenID string, userID kernel.UserID, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+tokenID, userID.String(), ttl).Err(); err != nil {
		return errx.Wrap(err, "failed to save session", errx.TypeExternal)
	}
	return nil
}

func (s *RedisSessionStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKeyPrefix+tokenID).Result()
	if err != nil {
		return false, errx.Wrap(err, "failed to check session", errx.TypeExternal)
	}
	return n > 0, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+tokenID).Err(); err != nil {
		return errx.Wrap(err, "failed to delete session", errx.TypeExternal)
	}
	return nil
}
