package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"sevasetu/config"
	providerRepo "sevasetu/database/repository/provider"
	"sevasetu/models"

	"go.uber.org/zap"
)

// MatchingService selects one eligible provider for a request and reserves it.
type MatchingService interface {
	Match(ctx context.Context, category, district string) (*models.Provider, error)
}

// DefaultMatchingService implements MatchingService.
//
// In best-effort mode the candidate query, the selection and the availability
// write are independent store operations. Two checkouts for the same category
// and district can both select the same provider before either write lands;
// the second write simply overwrites the first. Conditional mode instead claims
// the provider with an update filtered on available == true and re-queries when
// the claim loses.
type DefaultMatchingService struct {
	ProviderRepo providerRepo.ProviderRepository
	Mode         string
	MaxAttempts  int
	Logger       *zap.Logger
}

func NewDefaultMatchingService(repo providerRepo.ProviderRepository, mode string, maxAttempts int, logger *zap.Logger) *DefaultMatchingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode == "" {
		mode = config.MatcherBestEffort
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &DefaultMatchingService{ProviderRepo: repo, Mode: mode, MaxAttempts: maxAttempts, Logger: logger}
}

// Match returns the reserved provider, ErrNoProviderAvailable when nobody is
// eligible, or a wrapped store error.
func (s *DefaultMatchingService) Match(ctx context.Context, category, district string) (*models.Provider, error) {
	if s.Mode == config.MatcherConditional {
		return s.matchConditional(ctx, category, district)
	}
	return s.matchBestEffort(ctx, category, district)
}

func (s *DefaultMatchingService) matchBestEffort(ctx context.Context, category, district string) (*models.Provider, error) {
	selected, err := s.selectCandidate(ctx, category, district)
	if err != nil {
		return nil, err
	}
	if err := s.ProviderRepo.SetAvailability(ctx, selected.ID, false); err != nil {
		return nil, fmt.Errorf("failed to reserve provider %s: %w", selected.ID, err)
	}
	selected.Available = false
	s.Logger.Info("Provider assigned",
		zap.String("providerId", selected.ID),
		zap.String("category", category),
		zap.String("district", district),
		zap.Float64("rating", selected.Rating))
	return selected, nil
}

func (s *DefaultMatchingService) matchConditional(ctx context.Context, category, district string) (*models.Provider, error) {
	for attempt := 1; attempt <= s.MaxAttempts; attempt++ {
		selected, err := s.selectCandidate(ctx, category, district)
		if err != nil {
			return nil, err
		}
		claimed, err := s.ProviderRepo.ClaimAvailable(ctx, selected.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to claim provider %s: %w", selected.ID, err)
		}
		if claimed {
			selected.Available = false
			s.Logger.Info("Provider claimed",
				zap.String("providerId", selected.ID),
				zap.String("category", category),
				zap.String("district", district),
				zap.Int("attempt", attempt))
			return selected, nil
		}
		s.Logger.Debug("Provider claim lost, retrying",
			zap.String("providerId", selected.ID),
			zap.Int("attempt", attempt))
	}
	return nil, ErrAssignmentConflict
}

func (s *DefaultMatchingService) selectCandidate(ctx context.Context, category, district string) (*models.Provider, error) {
	candidates, err := s.ProviderRepo.FindEligible(ctx, category, district)
	if err != nil {
		return nil, fmt.Errorf("provider lookup failed: %w", err)
	}
	eligible := candidates[:0:0]
	for _, p := range candidates {
		if p.Eligible(category, district) {
			eligible = append(eligible, p)
		}
	}
	selected := SelectBest(eligible)
	if selected == nil {
		return nil, ErrNoProviderAvailable
	}
	return selected, nil
}

// SelectBest returns the highest-rated candidate. Ties keep the input order,
// so among equally rated providers the first one returned by the store wins.
func SelectBest(candidates []models.Provider) *models.Provider {
	if len(candidates) == 0 {
		return nil
	}
	sorted := make([]models.Provider, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	best := sorted[0]
	return &best
}

// IsNoMatch reports whether err is the no-eligible-provider outcome.
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoProviderAvailable)
}
