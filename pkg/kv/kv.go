// Package kv is the best-effort key-value port used for snapshots, buffered counters and markers. Anything
// stored here is safe to lose.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/configs"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// IncrBy adds delta to one counter of the hash stored at key.
	IncrBy(ctx context.Context, key string, field string, delta int64) error
	// Counters returns every counter of the hash stored at key.
	Counters(ctx context.Context, key string) (map[string]int64, error)
	// Drain returns every counter of the hash stored at key and removes it.
	Drain(ctx context.Context, key string) (map[string]int64, error)
	Close() error
}

// Open builds the store named by the cache configuration.
func Open(ctx context.Context, conf configs.Cache, logger *zap.Logger) (Store, error) {
	switch conf.Driver {
	case "memory":
		return NewMemory(), nil
	case "redis":
		store := NewRedis(conf)
		if err := store.Ping(ctx); err != nil {
			logger.Error("Could not reach redis", zap.String("address", conf.Address), zap.Error(err))

			return nil, multierr.Append(err, store.Close())
		}

		return store, nil
	default:
		return nil, fmt.Errorf("%w: unknown cache driver %q", configs.ErrConfiguration, conf.Driver)
	}
}

func GetJSON(ctx context.Context, store Store, key string, value any) error {
	data, err := store.Get(ctx, key)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, value)
}

func SetJSON(ctx context.Context, store Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return store.Set(ctx, key, data)
}
