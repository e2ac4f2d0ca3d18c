package implementation

import (
	"context"
	"errors"

	"docintel-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type RedisTokenRepository struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisTokenRepository(rdb *redis.Client, prefix string) contract.TokenRepository {
	return &RedisTokenRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisTokenRepository) Get(ctx context.Context, key string) (string, bool, error) {
	token, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return token, true, nil
}

func (r *RedisTokenRepository) Save(ctx context.Context, key, token string) error {
	return r.rdb.Set(ctx, r.prefix+key, token, 0).Err()
}

func (r *RedisTokenRepository) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.prefix+key).Err()
}
