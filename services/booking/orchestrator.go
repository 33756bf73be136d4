package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"sevasetu/models"
	"sevasetu/services/live"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultBookingService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func (s *DefaultBookingService) nextID() string {
	if s.newID != nil {
		return s.newID()
	}
	return uuid.New().String()
}

// RequestID builds the display identifier REQ-<epoch-ms>-<0..999>. It is not unique.
func RequestID(at time.Time, random int) string {
	return fmt.Sprintf("REQ-%d-%d", at.UnixMilli(), random)
}

func (s *DefaultBookingService) requestID(at time.Time) string {
	r := rand.Intn
	if s.random != nil {
		r = s.random
	}
	return RequestID(at, r(1000))
}

// Checkout validates the form, matches a provider for the first cart item and
// writes exactly one booking. The cart is cleared only after the insert succeeds.
func (s *DefaultBookingService) Checkout(ctx context.Context, identity models.Identity, cartID string, req CheckoutRequest) (*CheckoutResult, error) {
	log := s.logger().With(zap.String("cartId", cartID), zap.String("uid", identity.UID))

	c, err := s.Carts.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if c.Empty() {
		return nil, ErrCartEmpty
	}

	req.trim()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.Geo != nil && (req.Address.District == "" || req.Address.State == "") {
		loc := s.Geo.LookupPincode(ctx, req.Address.Pincode)
		if req.Address.District == "" {
			req.Address.District = loc.District
		}
		if req.Address.State == "" {
			req.Address.State = loc.State
		}
	}

	category := c.Category()
	result := &CheckoutResult{Next: NextFeedback}

	provider, matchErr := s.Matcher.Match(ctx, category, req.Address.District)
	switch {
	case matchErr == nil:
	case errors.Is(matchErr, ErrNoProviderAvailable):
		log.Warn("No provider available in district", zap.String("category", category), zap.String("district", req.Address.District))
		result.Notice = "No provider available in your district yet. Your booking is pending."
		provider = nil
	default:
		log.Error("Provider assignment failed", zap.String("category", category), zap.Error(matchErr))
		result.Notice = "We could not assign a provider right now. Your booking is pending."
		provider = nil
	}

	createdAt := s.clock()
	b := &models.Booking{
		ID:               s.nextID(),
		SchemaVersion:    models.BookingSchemaVersion,
		UserID:           firstNonEmpty(identity.UID, "unknown_user"),
		Name:             firstNonEmpty(req.Name, identity.DisplayName, "Customer"),
		Email:            firstNonEmpty(req.Email, identity.Email),
		Phone:            req.Phone,
		Services:         make([]models.BookedService, 0, len(c.Items)),
		Address:          req.Address,
		Date:             req.Date,
		TimeSlot:         req.TimeSlot,
		TotalAmount:      c.Total(),
		Status:           models.BookingPending,
		AssignedProvider: provider,
		RequestID:        s.requestID(createdAt),
		CreatedAt:        createdAt,
	}
	for _, item := range c.Items {
		b.Services = append(b.Services, models.BookedService{
			Category:   firstNonEmpty(item.Category, category),
			SubService: item.Name,
			Price:      item.Price,
		})
	}
	if provider != nil {
		b.Status = models.BookingAssigned
	}

	if err := s.Bookings.Insert(ctx, b); err != nil {
		// The provider stays reserved; an admin re-enable releases it.
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	log.Info("Booking created", zap.String("bookingId", b.ID), zap.String("requestId", b.RequestID), zap.String("status", string(b.Status)))

	if err := s.Carts.Delete(ctx, cartID); err != nil {
		log.Warn("Failed to clear cart after checkout", zap.Error(err))
	}
	if s.LastBookings != nil {
		if err := s.LastBookings.Save(ctx, OwnerKey(identity, cartID), b); err != nil {
			log.Warn("Failed to cache last booking", zap.Error(err))
		}
	}
	if provider != nil && s.Tasks != nil {
		if err := s.Tasks.BookingAssigned(ctx, b); err != nil {
			log.Warn("Failed to queue provider notification", zap.Error(err))
		}
	}
	if s.Events != nil {
		s.Events.Publish(live.EventBookingCreated, b)
	}

	result.Booking = b
	return result, nil
}

// LastBooking returns the cached confirmation snapshot for owner, or nil.
func (s *DefaultBookingService) LastBooking(ctx context.Context, owner string) (*models.Booking, error) {
	if s.LastBookings == nil {
		return nil, nil
	}
	return s.LastBookings.Load(ctx, owner)
}

// MyBookings lists the caller's bookings joined to their feedback by booking id.
func (s *DefaultBookingService) MyBookings(ctx context.Context, identity models.Identity) ([]models.BookingWithFeedback, error) {
	if identity.UID == "" {
		return []models.BookingWithFeedback{}, nil
	}
	bookings, err := s.Bookings.ListByUser(ctx, identity.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	byBooking := map[string]models.Feedback{}
	if s.Feedback != nil {
		feedback, err := s.Feedback.ListByBookingIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to list feedback: %w", err)
		}
		for _, f := range feedback {
			if _, seen := byBooking[f.BookingID]; !seen {
				byBooking[f.BookingID] = f
			}
		}
	}

	out := make([]models.BookingWithFeedback, 0, len(bookings))
	for _, b := range bookings {
		entry := models.BookingWithFeedback{Booking: b}
		if f, ok := byBooking[b.ID]; ok {
			fb := f
			entry.Feedback = &fb
		}
		out = append(out, entry)
	}
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
