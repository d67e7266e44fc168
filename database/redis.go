package database

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists snapshots as plain string keys in Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotMissing
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, blob []byte) error {
	return r.client.Set(ctx, r.prefix+key, blob, 0).Err()
}
