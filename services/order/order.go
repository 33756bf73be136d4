package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sevasetu/database"
	orderRepo "sevasetu/database/repository/order"
	"sevasetu/models"
	"sevasetu/services/live"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrNoItems       = errors.New("order has no items")
)

var statusLabels = map[string]models.OrderStatus{
	"pending":   models.OrderPending,
	"approved":  models.OrderApproved,
	"assigned":  models.OrderAssigned,
	"completed": models.OrderCompleted,
	"cancelled": models.OrderCancelled,
	"canceled":  models.OrderCancelled,
}

// ParseOrderStatus accepts either admin screen's spelling of a status label.
func ParseOrderStatus(label string) (models.OrderStatus, error) {
	status, ok := statusLabels[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, label)
	}
	return status, nil
}

type OrderService interface {
	CreateOrder(ctx context.Context, identity models.Identity, items []models.OrderItem) (*models.Order, error)
	ListForUser(ctx context.Context, identity models.Identity) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	// UpdateStatus sets any accepted status regardless of the current one.
	UpdateStatus(ctx context.Context, id, label string) (*models.Order, error)
	Stats(ctx context.Context) (*models.OrderStats, error)
}

type DefaultOrderService struct {
	Repo   orderRepo.OrderRepository
	Events live.Publisher
	Logger *zap.Logger

	now func() time.Time
}

func NewDefaultOrderService(repo orderRepo.OrderRepository, events live.Publisher, logger *zap.Logger) *DefaultOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = live.NopPublisher{}
	}
	return &DefaultOrderService{Repo: repo, Events: events, Logger: logger, now: time.Now}
}

func (s *DefaultOrderService) CreateOrder(ctx context.Context, identity models.Identity, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	var total float64
	for _, it := range items {
		total += it.SellPrice
	}
	o := &models.Order{
		ID:          uuid.New().String(),
		UserID:      identity.UID,
		Items:       items,
		TotalAmount: total,
		Status:      models.OrderPending,
		CreatedAt:   s.now(),
	}
	if err := s.Repo.Insert(ctx, o); err != nil {
		return nil, err
	}
	s.Logger.Info("Order created", zap.String("orderId", o.ID), zap.Float64("total", total))
	return o, nil
}

func (s *DefaultOrderService) ListForUser(ctx context.Context, identity models.Identity) ([]models.Order, error) {
	if identity.UID == "" {
		return []models.Order{}, nil
	}
	return s.Repo.ListByUser(ctx, identity.UID)
}

func (s *DefaultOrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultOrderService) UpdateStatus(ctx context.Context, id, label string) (*models.Order, error) {
	status, err := ParseOrderStatus(label)
	if err != nil {
		return nil, err
	}
	at := s.now()
	if err := s.Repo.UpdateStatus(ctx, id, status, at); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	o, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		// The write landed; report what we know.
		o = &models.Order{ID: id, Status: status, UpdatedAt: at}
	}
	s.Logger.Info("Order status updated", zap.String("orderId", id), zap.String("status", string(status)))
	s.Events.Publish(live.EventOrderStatusChanged, o)
	return o, nil
}

// Stats counts orders by status. Revenue only includes completed orders.
func (s *DefaultOrderService) Stats(ctx context.Context) (*models.OrderStats, error) {
	orders, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := &models.OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.OrderPending:
			stats.Pending++
		case models.OrderCompleted:
			stats.Completed++
			stats.Revenue += o.TotalAmount
		case models.OrderCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}
