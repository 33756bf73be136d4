package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sevasetu/config"
	"sevasetu/database"
	"sevasetu/models"
	"sevasetu/services/live"
	"sevasetu/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type memProviders struct {
	byID   map[string]*models.Provider
	writes int
}

func (m *memProviders) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("provider %s: %w", id, database.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (m *memProviders) List(ctx context.Context, f models.ProviderFilter) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range m.byID {
		if f.Available != nil && p.Available != *f.Available {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProviders) FindEligible(ctx context.Context, category, district string) ([]models.Provider, error) {
	return nil, nil
}

func (m *memProviders) SetAvailability(ctx context.Context, id string, available bool) error {
	m.writes++
	p, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("provider %s: %w", id, database.ErrNotFound)
	}
	p.Available = available
	return nil
}

func (m *memProviders) ClaimAvailable(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func (m *memProviders) UpdateWithDocument(ctx context.Context, id string, doc bson.M) error {
	return nil
}

type memBookings struct{ all []models.Booking }

func (m *memBookings) Insert(ctx context.Context, b *models.Booking) error { return nil }
func (m *memBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, database.ErrNotFound
}
func (m *memBookings) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}
func (m *memBookings) ListAssigned(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.all {
		if b.AssignedProvider != nil {
			out = append(out, b)
		}
	}
	return out, nil
}
func (m *memBookings) ListAll(ctx context.Context) ([]models.Booking, error) { return m.all, nil }

type memFeedback struct{ all []models.Feedback }

func (m *memFeedback) Insert(ctx context.Context, f *models.Feedback) error { return nil }
func (m *memFeedback) ListAll(ctx context.Context) ([]models.Feedback, error) {
	return m.all, nil
}
func (m *memFeedback) ListByUser(ctx context.Context, userID string) ([]models.Feedback, error) {
	return nil, nil
}
func (m *memFeedback) ListByBookingIDs(ctx context.Context, ids []string) ([]models.Feedback, error) {
	return nil, nil
}

type memServices struct {
	byID  map[string]*models.Service
	order []string
	last  bson.M
}

func newMemServices(services ...models.Service) *memServices {
	m := &memServices{byID: map[string]*models.Service{}}
	for i := range services {
		s := services[i]
		m.byID[s.ID] = &s
		m.order = append(m.order, s.ID)
	}
	return m
}

func (m *memServices) GetAll(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, id := range m.order {
		out = append(out, *m.byID[id])
	}
	return out, nil
}

func (m *memServices) GetByID(ctx context.Context, id string) (*models.Service, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("service %s: %w", id, database.ErrNotFound)
	}
	cp := *s
	return &cp, nil
}

func (m *memServices) UpdateWithDocument(ctx context.Context, id string, doc bson.M) error {
	s, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("service %s: %w", id, database.ErrNotFound)
	}
	m.last = doc
	set := doc["$set"].(bson.M)
	if v, ok := set["sellPrice"]; ok {
		s.SellPrice = v.(float64)
	}
	if v, ok := set["providerCost"]; ok {
		s.ProviderCost = v.(float64)
	}
	if v, ok := set["commissionPercent"]; ok {
		s.CommissionPercent = v.(float64)
	}
	return nil
}

type published struct{ types []string }

func (p *published) Publish(eventType string, data interface{}) {
	p.types = append(p.types, eventType)
}

func TestReenableProviderIsIdempotent(t *testing.T) {
	providers := &memProviders{byID: map[string]*models.Provider{
		"p1": {ID: "p1", Available: false},
	}}
	events := &published{}
	svc := &DefaultAdminService{Providers: providers, Events: events}

	require.NoError(t, svc.ReenableProvider(context.Background(), "p1"))
	assert.True(t, providers.byID["p1"].Available)

	require.NoError(t, svc.ReenableProvider(context.Background(), "p1"))
	assert.True(t, providers.byID["p1"].Available)
	assert.Equal(t, 2, providers.writes)
	assert.Equal(t, []string{live.EventProviderReenabled, live.EventProviderReenabled}, events.types)

	assert.ErrorIs(t, svc.ReenableProvider(context.Background(), "ghost"), ErrProviderNotFound)
}

func TestAssignedBookings(t *testing.T) {
	bookings := &memBookings{all: []models.Booking{
		{ID: "b1", AssignedProvider: &models.Provider{ID: "p1"}},
		{ID: "b2"},
	}}
	svc := &DefaultAdminService{Bookings: bookings}

	got, err := svc.AssignedBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
}

func TestDashboard(t *testing.T) {
	svc := &DefaultAdminService{
		Bookings: &memBookings{all: []models.Booking{
			{Services: []models.BookedService{{Category: "Cleaning"}}},
			{Services: []models.BookedService{{Category: "Pest Control"}}},
			{Services: []models.BookedService{{Category: "Pest Control"}}},
		}},
		Feedback: &memFeedback{all: []models.Feedback{{Rating: 5}, {Rating: 4}, {Rating: 4}}},
	}

	got, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardSummary{
		TotalBookings: 3,
		TotalFeedback: 3,
		AvgRating:     4.3,
		TopCategory:   "Pest Control",
	}, got)

	empty := &DefaultAdminService{Bookings: &memBookings{}, Feedback: &memFeedback{}}
	got, err = empty.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "N/A", got.TopCategory)
	assert.Zero(t, got.AvgRating)
}

func TestFeedbackSummary(t *testing.T) {
	svc := &DefaultAdminService{Feedback: &memFeedback{all: []models.Feedback{
		{Category: "Pest Control", ServiceName: "Termite Control", Rating: 5},
		{Category: "Pest Control", ServiceName: "Cockroach Control", Rating: 2},
		{Category: "Cleaning", ServiceName: "Sofa Cleaning", Rating: 4},
	}}}

	all, err := svc.FeedbackSummary(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
	assert.Equal(t, []models.CategoryRating{
		{Category: "Cleaning", Average: 4, Count: 1},
		{Category: "Pest Control", Average: 3.5, Count: 2},
	}, all.Categories)

	termite, err := svc.FeedbackSummary(context.Background(), "TERMITE")
	require.NoError(t, err)
	require.Len(t, termite.Items, 1)
	assert.Equal(t, "Termite Control", termite.Items[0].ServiceName)

	none, err := svc.FeedbackSummary(context.Background(), "plumbing")
	require.NoError(t, err)
	assert.Empty(t, none.Items)
	assert.Empty(t, none.Categories)
}

func TestRevenue(t *testing.T) {
	svc := &DefaultAdminService{Services: newMemServices(
		models.Service{ID: "s1", Name: "Deep Cleaning", Category: "Cleaning", Area: "Pune",
			SellPrice: 1000, ProviderCost: 600, CommissionPercent: 10, BookingsCount: 3},
		models.Service{ID: "s2", Name: "Sofa Cleaning", Category: "Cleaning",
			Price: 500, ProviderCost: 300, BookingsCount: 2},
		models.Service{ID: "s3", Name: "Termite Control", Category: "Pest Control", Area: "Pune",
			SellPrice: 999, ProviderCost: 999, BookingsCount: 0},
	)}

	report, err := svc.Revenue(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Services, 3)

	deep := report.Services[0]
	assert.Equal(t, 100.0, deep.CommissionAmount)
	assert.Equal(t, 3000.0, deep.Revenue)
	assert.Equal(t, 1800.0, deep.Cost)
	assert.Equal(t, 300.0, deep.Commission)
	assert.Equal(t, 900.0, deep.NetRevenue)

	sofa := report.Services[1]
	assert.Equal(t, 500.0, sofa.SellPrice)
	assert.Equal(t, "Unknown", sofa.Area)
	assert.Equal(t, 400.0, sofa.NetRevenue)

	assert.Equal(t, 4000.0, report.TotalRevenue)
	assert.Equal(t, 2400.0, report.TotalCost)
	assert.Equal(t, 300.0, report.TotalCommission)
	assert.Equal(t, 1300.0, report.Profit)
	assert.Equal(t, 32.5, report.AvgMarginPct)

	require.Len(t, report.ByCategory, 2)
	assert.Equal(t, "Cleaning", report.ByCategory[0].Key)
	assert.Equal(t, 5, report.ByCategory[0].Bookings)
	require.Len(t, report.ByArea, 2)
	assert.Equal(t, "Pune", report.ByArea[0].Key)
	assert.Equal(t, "Unknown", report.ByArea[1].Key)
}

func TestUpdateServicePricing(t *testing.T) {
	services := newMemServices(models.Service{ID: "s1", Price: 500})
	svc := &DefaultAdminService{Services: services}
	sell, pct := 650.0, 12.5

	got, err := svc.UpdateServicePricing(context.Background(), "s1", models.PricingUpdate{SellPrice: &sell, CommissionPercent: &pct})
	require.NoError(t, err)
	assert.Equal(t, 650.0, got.SellPrice)
	assert.Equal(t, 12.5, got.CommissionPercent)
	assert.Equal(t, bson.M{"$set": bson.M{"sellPrice": 650.0, "commissionPercent": 12.5}}, services.last)

	_, err = svc.UpdateServicePricing(context.Background(), "s1", models.PricingUpdate{})
	assert.ErrorIs(t, err, ErrInvalidPricing)

	tooMuch := 101.0
	_, err = svc.UpdateServicePricing(context.Background(), "s1", models.PricingUpdate{CommissionPercent: &tooMuch})
	assert.ErrorIs(t, err, ErrInvalidPricing)

	_, err = svc.UpdateServicePricing(context.Background(), "nope", models.PricingUpdate{SellPrice: &sell})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestLogin(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })
	config.AppConfig.JWTSecret = "test-secret"

	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := &DefaultAdminService{PasswordHash: string(hash), TokenTTL: time.Hour}

	token, err := svc.Login(context.Background(), "open sesame")
	require.NoError(t, err)
	_, role, err := utils.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, utils.AdminRole, role)

	_, err = svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	unset := &DefaultAdminService{}
	_, err = unset.Login(context.Background(), "open sesame")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
