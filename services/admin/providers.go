package admin

import (
	"context"
	"errors"
	"strings"

	"sevasetu/database"
	"sevasetu/models"
	"sevasetu/services/live"

	"go.uber.org/zap"
)

func (s *DefaultAdminService) ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.Providers.List(ctx, filter)
}

func (s *DefaultAdminService) ReenableProvider(ctx context.Context, id string) error {
	if err := s.Providers.SetAvailability(ctx, id, true); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrProviderNotFound
		}
		return err
	}
	s.logger().Info("Provider re-enabled", zap.String("providerId", id))
	s.publish(live.EventProviderReenabled, map[string]string{"id": id})
	return nil
}

func (s *DefaultAdminService) AssignedBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.ListAssigned(ctx)
}
