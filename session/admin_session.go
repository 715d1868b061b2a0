package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AdminSessionStore keeps the opaque admin session flags in Redis. There are
// no accounts behind them: a session exists or it does not.
type AdminSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAdminSessionStore(rdb *redis.Client, ttl time.Duration) *AdminSessionStore {
	return &AdminSessionStore{rdb: rdb, ttl: ttl}
}

func key(id string) string { return fmt.Sprintf("admin:sess:%s", id) }

func (s *AdminSessionStore) TTL() time.Duration { return s.ttl }

// Create issues a fresh opaque session id with the store's TTL.
func (s *AdminSessionStore) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := s.rdb.Set(ctx, key(id), "1", s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *AdminSessionStore) Validate(ctx context.Context, id string) bool {
	if id == "" {
		return false
	}
	n, err := s.rdb.Exists(ctx, key(id)).Result()
	return err == nil && n > 0
}

func (s *AdminSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}
