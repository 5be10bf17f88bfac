package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ricci/novel-reader-go/internal/config"
)

// RedisStore 基于Redis的设置存储
type RedisStore struct {
	redis *redis.Client
}

// NewRedisStore 连接Redis并检查可用性
func NewRedisStore(ctx context.Context, cfg *config.Config) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
	}
	slog.Info("Redis connected", slog.String("pong", pong))

	return &RedisStore{redis: rdb}, nil
}

// NewRedisStoreWithClient 使用已有客户端
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return res, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	return r.redis.Set(ctx, key, value, 0).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.redis.Del(ctx, key).Err()
}

// Close 关闭连接
func (r *RedisStore) Close() error {
	return r.redis.Close()
}
