package store

import (
	"context"
	"redadmin/internal/config"

	"github.com/redis/go-redis/v9"
)

var cts = context.Background()

const redisPrefix = "redadmin:"

// RedisBackend keeps the persisted stores in redis, for deployments where the
// console has no writable disk.
type RedisBackend struct {
	cli *redis.Client
}

func NewRedisBackend(cfg *config.RedisConfig) (*RedisBackend, error) {
	opts, err := redis.ParseURL(cfg.Url)
	if err != nil {
		log.Error("Failed to parse redis url: ", err)
		return nil, err
	}

	cli := redis.NewClient(opts)
	if err := cli.Ping(cts).Err(); err != nil {
		log.Error("Failed to ping redis: ", err)
		return nil, err
	}

	return &RedisBackend{cli: cli}, nil
}

func (r *RedisBackend) Load(key string) ([]byte, error) {
	data, err := r.cli.Get(cts, redisPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (r *RedisBackend) Save(key string, value []byte) error {
	return r.cli.Set(cts, redisPrefix+key, value, 0).Err()
}

func (r *RedisBackend) Delete(key string) error {
	return r.cli.Del(cts, redisPrefix+key).Err()
}
