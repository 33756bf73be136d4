package cart

import (
	"context"
	"errors"
	"strings"

	"sevasetu/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingCartID = errors.New("cart id is required")
	ErrInvalidItem   = errors.New("cart item needs a name")
)

// Service applies cart mutations and persists the result after each one.
type Service interface {
	Get(ctx context.Context, id string) (*Cart, error)
	Add(ctx context.Context, id string, item models.CartItem) (*Cart, error)
	Remove(ctx context.Context, id, name string) (*Cart, error)
	Clear(ctx context.Context, id string) error
}

type DefaultCartService struct {
	Store  Store
	Logger *zap.Logger
}

func NewDefaultCartService(store Store, logger *zap.Logger) *DefaultCartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultCartService{Store: store, Logger: logger}
}

// NewCartID issues an identifier for a new anonymous cart.
func NewCartID() string {
	return uuid.New().String()
}

func (s *DefaultCartService) Get(ctx context.Context, id string) (*Cart, error) {
	if id == "" {
		return nil, ErrMissingCartID
	}
	return s.Store.Load(ctx, id)
}

func (s *DefaultCartService) Add(ctx context.Context, id string, item models.CartItem) (*Cart, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, ErrInvalidItem
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Add(item) {
		s.Logger.Debug("Cart already holds service", zap.String("cartId", id), zap.String("name", item.Name))
		return c, nil
	}
	if err := s.Store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCartService) Remove(ctx context.Context, id, name string) (*Cart, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Remove(name) {
		return c, nil
	}
	if c.Empty() {
		return c, s.Store.Delete(ctx, id)
	}
	if err := s.Store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear drops the persisted copy of the cart.
func (s *DefaultCartService) Clear(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingCartID
	}
	return s.Store.Delete(ctx, id)
}
