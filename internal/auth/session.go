package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrSessionRevoked = errors.New("session revoked")

// SessionStore keeps one Redis key per issued token so tokens can be
// revoked before they expire.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func sessionKey(jti string) string {
	return "session:" + jti
}

func (s *SessionStore) Save(ctx context.Context, jti, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(jti), userID, ttl).Err()
}

// Check confirms the session exists and belongs to userID.
func (s *SessionStore) Check(ctx context.Context, jti, userID string) error {
	owner, err := s.rdb.Get(ctx, sessionKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrSessionRevoked
	}
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrSessionRevoked
	}
	return nil
}

func (s *SessionStore) Revoke(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, sessionKey(jti)).Err()
}
