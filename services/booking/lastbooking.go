package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sevasetu/models"
	"sevasetu/utils"

	"github.com/go-redis/redis/v8"
)

// LastBookingStore remembers the most recent booking per owner for the
// confirmation and feedback screens.
type LastBookingStore interface {
	Save(ctx context.Context, owner string, b *models.Booking) error
	// Load returns nil without error when nothing is cached.
	Load(ctx context.Context, owner string) (*models.Booking, error)
}

type RedisLastBookingStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLastBookingStore(client *redis.Client, ttl time.Duration) *RedisLastBookingStore {
	return &RedisLastBookingStore{client: client, ttl: ttl}
}

func (s *RedisLastBookingStore) Save(ctx context.Context, owner string, b *models.Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode last booking: %w", err)
	}
	if err := s.client.Set(ctx, utils.LastBookingKeyPrefix+owner, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save last booking for %s: %w", owner, err)
	}
	return nil
}

func (s *RedisLastBookingStore) Load(ctx context.Context, owner string) (*models.Booking, error) {
	data, err := s.client.Get(ctx, utils.LastBookingKeyPrefix+owner).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load last booking for %s: %w", owner, err)
	}
	var b models.Booking
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode last booking: %w", err)
	}
	return &b, nil
}

// OwnerKey scopes per-customer cached state: the uid when signed in, the cart id otherwise.
func OwnerKey(identity models.Identity, cartID string) string {
	if identity.UID != "" {
		return "user:" + identity.UID
	}
	return "cart:" + cartID
}
