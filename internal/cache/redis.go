package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis backs the Cache interface with a redis instance so invalidation
// is shared across API replicas.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(addr string) *Redis {
	return &Redis{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.rdb.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Invalidate(ctx context.Context, resourcePath string) error {
	iter := r.rdb.Scan(ctx, 0, resourcePath+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		key := iter.Val()
		if key == resourcePath || len(key) > len(resourcePath) && key[len(resourcePath)] == '?' {
			keys = append(keys, key)
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.rdb.Del(ctx, keys...).Err()
}
