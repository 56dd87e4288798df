package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Ключи коллекций в Redis
const (
	HazardsKey = "maritime:hazards"
	TrafficKey = "maritime:traffic"
)

// RedisCollection хранит коллекцию целиком как JSON под одним ключом без срока жизни
type RedisCollection[T any] struct {
	client *redis.Client
	key    string
}

func NewRedisCollection[T any](client *redis.Client, key string) *RedisCollection[T] {
	return &RedisCollection[T]{client: client, key: key}
}

// Load возвращает пустую коллекцию, если ключа еще нет
func (r *RedisCollection[T]) Load(ctx context.Context) ([]T, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to get %s from redis: %w", r.key, err)
	}

	items := make([]T, 0)
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", r.key, err)
	}
	return items, nil
}

func (r *RedisCollection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	val, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", r.key, err)
	}
	if err := r.client.Set(ctx, r.key, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", r.key, err)
	}
	return nil
}
