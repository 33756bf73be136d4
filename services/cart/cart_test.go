package cart

import (
	"context"
	"testing"
	"time"

	"sevasetu/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddDeduplicatesByName(t *testing.T) {
	c := &Cart{ID: "c1"}
	item := models.CartItem{Name: "Deep Cleaning", Price: 1299}

	assert.True(t, c.Add(item))
	assert.False(t, c.Add(item))
	assert.False(t, c.Add(models.CartItem{Name: "Deep Cleaning", Price: 1}))
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1299.0, c.Items[0].Price)
}

func TestCartNeverHoldsDuplicateNames(t *testing.T) {
	names := []string{"A", "B", "A", "C", "B", "A", "D", "C"}
	c := &Cart{}
	for _, n := range names {
		c.Add(models.CartItem{Name: n})
	}

	seen := map[string]bool{}
	for _, item := range c.Items {
		assert.False(t, seen[item.Name], "duplicate %s", item.Name)
		seen[item.Name] = true
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, itemNames(c))
}

func TestCartTotalTreatsMissingPriceAsZero(t *testing.T) {
	c := &Cart{Items: []models.CartItem{
		{Name: "one", Price: 500},
		{Name: "two", Price: 300},
		{Name: "three"},
	}}
	assert.Equal(t, 800.0, c.Total())
	assert.Equal(t, 0.0, (&Cart{}).Total())
}

func TestCartRemoveAndClear(t *testing.T) {
	c := &Cart{}
	c.Add(models.CartItem{Name: "A"})
	c.Add(models.CartItem{Name: "B"})
	c.Add(models.CartItem{Name: "C"})

	assert.True(t, c.Remove("B"))
	assert.False(t, c.Remove("B"))
	assert.Equal(t, []string{"A", "C"}, itemNames(c))

	c.Clear()
	assert.True(t, c.Empty())
}

func TestCartCategoryUsesFirstItem(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, "General", c.Category())

	c.Add(models.CartItem{Name: "Termite Control", Category: "Pest Control"})
	c.Add(models.CartItem{Name: "Tap Repair", Category: "Plumbing"})
	assert.Equal(t, "Pest Control", c.Category())
}

func newTestService(t *testing.T) (*DefaultCartService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewDefaultCartService(NewRedisStore(client, time.Hour), nil), mr
}

func TestDefaultCartServicePersistsEveryMutation(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	c, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, c.Empty())

	_, err = svc.Add(ctx, "c1", models.CartItem{Name: "Deep Cleaning", Category: "Cleaning", Price: 1299})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "c1", models.CartItem{Name: "Deep Cleaning", Category: "Cleaning", Price: 1299})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "c1", models.CartItem{Name: "Sofa Cleaning", Category: "Cleaning", Price: 499})
	require.NoError(t, err)

	assert.True(t, mr.Exists("cart:c1"))
	assert.Equal(t, time.Hour, mr.TTL("cart:c1"))

	reloaded, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Deep Cleaning", "Sofa Cleaning"}, itemNames(reloaded))
	assert.Equal(t, 1798.0, reloaded.Total())

	_, err = svc.Remove(ctx, "c1", "Deep Cleaning")
	require.NoError(t, err)
	reloaded, err = svc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sofa Cleaning"}, itemNames(reloaded))

	require.NoError(t, svc.Clear(ctx, "c1"))
	assert.False(t, mr.Exists("cart:c1"))
}

func TestDefaultCartServiceRejectsBadInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrMissingCartID)

	_, err = svc.Add(ctx, "c1", models.CartItem{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestRedisStoreSurfacesBackendFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	store := NewRedisStore(client, time.Hour)
	mr.Close()

	_, err := store.Load(context.Background(), "c1")
	assert.Error(t, err)
}

func itemNames(c *Cart) []string {
	names := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		names = append(names, item.Name)
	}
	return names
}
