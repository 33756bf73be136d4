package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sevasetu/utils"

	"github.com/go-redis/redis/v8"
)

// Store persists carts between requests.
type Store interface {
	Load(ctx context.Context, id string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps each cart as a JSON value with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func cartKey(id string) string {
	return utils.CartKeyPrefix + id
}

// Load returns the stored cart or an empty one when none exists.
func (s *RedisStore) Load(ctx context.Context, id string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Cart{ID: id}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart store: load %s: %w", id, err)
	}
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cart store: decode %s: %w", id, err)
	}
	c.ID = id
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cart store: encode %s: %w", c.ID, err)
	}
	if err := s.client.Set(ctx, cartKey(c.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart store: save %s: %w", c.ID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, cartKey(id)).Err(); err != nil {
		return fmt.Errorf("cart store: delete %s: %w", id, err)
	}
	return nil
}
