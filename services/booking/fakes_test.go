package booking

import (
	"context"
	"fmt"
	"sync"

	"sevasetu/database"
	"sevasetu/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeProviderRepo keeps providers in insertion order, which stands in for the
// store's natural order.
type fakeProviderRepo struct {
	mu        sync.Mutex
	providers []models.Provider
	findErr   error
	setErr    error
	unfilter  bool
	onFind    func()
	setCalls  int
}

func (f *fakeProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.providers {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("provider %s: %w", id, database.ErrNotFound)
}

func (f *fakeProviderRepo) List(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Provider(nil), f.providers...), nil
}

// FindEligible snapshots the matching providers first and only then runs
// onFind, so a hook that blocks holds a result that may already be stale.
func (f *fakeProviderRepo) FindEligible(ctx context.Context, category, district string) ([]models.Provider, error) {
	f.mu.Lock()
	err := f.findErr
	var out []models.Provider
	for _, p := range f.providers {
		if f.unfilter || p.Eligible(category, district) {
			out = append(out, p)
		}
	}
	f.mu.Unlock()

	if f.onFind != nil {
		f.onFind()
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeProviderRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	for i := range f.providers {
		if f.providers[i].ID == id {
			f.providers[i].Available = available
			return nil
		}
	}
	return fmt.Errorf("provider %s: %w", id, database.ErrNotFound)
}

func (f *fakeProviderRepo) ClaimAvailable(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.providers {
		if f.providers[i].ID == id {
			if !f.providers[i].Available {
				return false, nil
			}
			f.providers[i].Available = false
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProviderRepo) UpdateWithDocument(ctx context.Context, id string, updateDoc bson.M) error {
	return nil
}

func (f *fakeProviderRepo) available(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.providers {
		if p.ID == id {
			return p.Available
		}
	}
	return false
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  []models.Booking
	insertErr error
}

func (f *fakeBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id, database.ErrNotFound)
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAssigned(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Booking(nil), f.bookings...), nil
}

type fakeFeedbackRepo struct {
	items []models.Feedback
}

func (f *fakeFeedbackRepo) Insert(ctx context.Context, fb *models.Feedback) error {
	f.items = append(f.items, *fb)
	return nil
}

func (f *fakeFeedbackRepo) ListAll(ctx context.Context) ([]models.Feedback, error) {
	return f.items, nil
}

func (f *fakeFeedbackRepo) ListByUser(ctx context.Context, userID string) ([]models.Feedback, error) {
	return nil, nil
}

func (f *fakeFeedbackRepo) ListByBookingIDs(ctx context.Context, ids []string) ([]models.Feedback, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Feedback
	for _, fb := range f.items {
		if want[fb.BookingID] {
			out = append(out, fb)
		}
	}
	return out, nil
}

type fakeGeo struct {
	loc   models.Location
	calls int
}

func (g *fakeGeo) LookupPincode(ctx context.Context, pincode string) models.Location {
	g.calls++
	loc := g.loc
	loc.Pincode = pincode
	return loc
}

func (g *fakeGeo) ReverseGeocode(ctx context.Context, lat, lon float64) models.Location {
	return g.loc
}

type fakeDispatcher struct {
	assigned []string
}

func (d *fakeDispatcher) BookingAssigned(ctx context.Context, b *models.Booking) error {
	d.assigned = append(d.assigned, b.ID)
	return nil
}

func (d *fakeDispatcher) SupportTicket(ctx context.Context, t *models.SupportTicket) error {
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(eventType string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}
