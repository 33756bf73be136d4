package admin

import (
	"context"
	"errors"
	"time"

	bookingRepo "sevasetu/database/repository/booking"
	feedbackRepo "sevasetu/database/repository/feedback"
	providerRepo "sevasetu/database/repository/provider"
	serviceRepo "sevasetu/database/repository/service"
	"sevasetu/models"
	"sevasetu/services/live"

	"go.uber.org/zap"
)

var (
	ErrProviderNotFound   = errors.New("provider not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidPricing     = errors.New("invalid pricing update")
	ErrInvalidCredentials = errors.New("invalid admin credentials")
)

// AdminService backs the admin console. Order and ticket triage live in
// their own services.
type AdminService interface {
	Login(ctx context.Context, password string) (string, error)

	ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error)
	// ReenableProvider marks the provider available again. It does not check
	// the current value, so repeating it is harmless.
	ReenableProvider(ctx context.Context, id string) error

	AssignedBookings(ctx context.Context) ([]models.Booking, error)
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
	FeedbackSummary(ctx context.Context, search string) (*models.FeedbackSummary, error)

	Revenue(ctx context.Context) (*models.RevenueReport, error)
	UpdateServicePricing(ctx context.Context, id string, update models.PricingUpdate) (*models.Service, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Providers providerRepo.ProviderRepository
	Bookings  bookingRepo.BookingRepository
	Feedback  feedbackRepo.FeedbackRepository
	Services  serviceRepo.ServiceRepository
	Events    live.Publisher
	Logger    *zap.Logger

	PasswordHash string
	TokenTTL     time.Duration
}

func (s *DefaultAdminService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultAdminService) publish(eventType string, data interface{}) {
	if s.Events != nil {
		s.Events.Publish(eventType, data)
	}
}
