package kv

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/multierr"

	"droscher.com/BeerFinder/configs"
)

type Redis struct {
	client *redis.Client
}

func NewRedis(conf configs.Cache) *Redis {
	return &Redis{client: redis.NewClient(&redis.Options{
		Addr:     conf.Address,
		Password: conf.Password,
		DB:       conf.DB,
	})}
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	return value, err
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *Redis) IncrBy(ctx context.Context, key string, field string, delta int64) error {
	return r.client.HIncrBy(ctx, key, field, delta).Err()
}

func (r *Redis) Counters(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	return parseCounters(raw)
}

func (r *Redis) Drain(ctx context.Context, key string) (map[string]int64, error) {
	pipe := r.client.TxPipeline()
	all := pipe.HGetAll(ctx, key)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	return parseCounters(all.Val())
}

func parseCounters(values map[string]string) (map[string]int64, error) {
	counters := make(map[string]int64, len(values))

	var err error

	for field, raw := range values {
		value, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			err = multierr.Append(err, parseErr)

			continue
		}

		counters[field] = value
	}

	return counters, err
}

func (r *Redis) Close() error {
	return r.client.Close()
}
