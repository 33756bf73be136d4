package booking

import (
	"context"
	"time"

	bookingRepo "sevasetu/database/repository/booking"
	feedbackRepo "sevasetu/database/repository/feedback"
	"sevasetu/models"
	"sevasetu/services/cart"
	"sevasetu/services/geo"
	"sevasetu/services/live"
	"sevasetu/services/tasks"

	"go.uber.org/zap"
)

// NextFeedback tells the client to show the feedback form after checkout.
const NextFeedback = "feedback"

// CheckoutResult is returned to the client after a successful checkout.
type CheckoutResult struct {
	Booking *models.Booking `json:"booking"`
	Next    string          `json:"next"`
	Notice  string          `json:"notice,omitempty"`
}

// BookingService covers checkout and the customer's booking history.
type BookingService interface {
	Checkout(ctx context.Context, identity models.Identity, cartID string, req CheckoutRequest) (*CheckoutResult, error)
	LastBooking(ctx context.Context, owner string) (*models.Booking, error)
	MyBookings(ctx context.Context, identity models.Identity) ([]models.BookingWithFeedback, error)
}

// DefaultBookingService wires the checkout collaborators together.
type DefaultBookingService struct {
	Carts        cart.Store
	Bookings     bookingRepo.BookingRepository
	Feedback     feedbackRepo.FeedbackRepository
	Matcher      MatchingService
	Geo          geo.Lookup
	LastBookings LastBookingStore
	Tasks        tasks.Dispatcher
	Events       live.Publisher
	Logger       *zap.Logger

	now    func() time.Time
	random func(n int) int
	newID  func() string
}

var _ BookingService = (*DefaultBookingService)(nil)
