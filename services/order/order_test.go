package order

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"sevasetu/database"
	"sevasetu/models"
	"sevasetu/services/live"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOrderRepo struct {
	orders    map[string]*models.Order
	insertErr error
}

func newMemOrderRepo(orders ...models.Order) *memOrderRepo {
	r := &memOrderRepo{orders: map[string]*models.Order{}}
	for i := range orders {
		o := orders[i]
		r.orders[o.ID] = &o
	}
	return r
}

func (r *memOrderRepo) Insert(ctx context.Context, o *models.Order) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, database.ErrNotFound)
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, at time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, database.ErrNotFound)
	}
	o.Status = status
	o.UpdatedAt = at
	return nil
}

type eventLog struct{ types []string }

func (e *eventLog) Publish(eventType string, data interface{}) { e.types = append(e.types, eventType) }

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		label string
		want  models.OrderStatus
	}{
		{"pending", models.OrderPending},
		{"Approved", models.OrderApproved},
		{"approved", models.OrderApproved},
		{"ASSIGNED", models.OrderAssigned},
		{" Completed ", models.OrderCompleted},
		{"cancelled", models.OrderCancelled},
		{"Canceled", models.OrderCancelled},
	}
	for _, tt := range tests {
		got, err := ParseOrderStatus(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}

	_, err := ParseOrderStatus("shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateOrder(t *testing.T) {
	repo := newMemOrderRepo()
	svc := NewDefaultOrderService(repo, nil, nil)

	o, err := svc.CreateOrder(context.Background(), models.Identity{UID: "u1"}, []models.OrderItem{
		{Name: "Deep Cleaning", SellPrice: 1200},
		{Name: "Sofa Cleaning", SellPrice: 450.5},
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, o.Status)
	assert.Equal(t, 1650.5, o.TotalAmount)
	assert.NotEmpty(t, o.ID)
	assert.Contains(t, repo.orders, o.ID)

	_, err = svc.CreateOrder(context.Background(), models.Identity{UID: "u1"}, nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestUpdateStatusIsUnguarded(t *testing.T) {
	repo := newMemOrderRepo(models.Order{ID: "o1", Status: models.OrderCompleted})
	events := &eventLog{}
	svc := NewDefaultOrderService(repo, events, nil)

	// Completed back to pending is allowed.
	o, err := svc.UpdateStatus(context.Background(), "o1", "pending")
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, o.Status)

	o, err = svc.UpdateStatus(context.Background(), "o1", "cancelled")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, o.Status)
	assert.Equal(t, []string{live.EventOrderStatusChanged, live.EventOrderStatusChanged}, events.types)
}

func TestUpdateStatusErrors(t *testing.T) {
	repo := newMemOrderRepo(models.Order{ID: "o1", Status: models.OrderPending})
	svc := NewDefaultOrderService(repo, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), "missing", "Completed")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.UpdateStatus(context.Background(), "o1", "lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, models.OrderPending, repo.orders["o1"].Status)
}

func TestStats(t *testing.T) {
	repo := newMemOrderRepo(
		models.Order{ID: "o1", Status: models.OrderPending, TotalAmount: 100},
		models.Order{ID: "o2", Status: models.OrderCompleted, TotalAmount: 250},
		models.Order{ID: "o3", Status: models.OrderCompleted, TotalAmount: 50},
		models.Order{ID: "o4", Status: models.OrderCancelled, TotalAmount: 999},
		models.Order{ID: "o5", Status: models.OrderApproved, TotalAmount: 10},
	)
	svc := NewDefaultOrderService(repo, nil, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.OrderStats{Total: 5, Pending: 1, Completed: 2, Cancelled: 1, Revenue: 300}, stats)
}

func TestCreateOrderStoreFailure(t *testing.T) {
	repo := newMemOrderRepo()
	repo.insertErr = errors.New("boom")
	svc := NewDefaultOrderService(repo, nil, nil)

	_, err := svc.CreateOrder(context.Background(), models.Identity{UID: "u1"}, []models.OrderItem{{Name: "x", SellPrice: 1}})
	assert.Error(t, err)
}
