package admin

import (
	"context"
	"errors"
	"sort"

	"sevasetu/database"
	"sevasetu/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const unknownArea = "Unknown"

func serviceRevenue(svc models.Service) models.ServiceRevenue {
	sell := svc.EffectiveSellPrice()
	commissionAmt := sell * svc.CommissionPercent / 100
	n := float64(svc.BookingsCount)
	area := svc.Area
	if area == "" {
		area = unknownArea
	}
	return models.ServiceRevenue{
		ServiceID:         svc.ID,
		Name:              svc.Name,
		Category:          svc.Category,
		Area:              area,
		SellPrice:         sell,
		ProviderCost:      svc.ProviderCost,
		CommissionPercent: svc.CommissionPercent,
		CommissionAmount:  commissionAmt,
		BookingsCount:     svc.BookingsCount,
		Revenue:           n * sell,
		Cost:              n * svc.ProviderCost,
		Commission:        n * commissionAmt,
		NetRevenue:        n * (sell - svc.ProviderCost - commissionAmt),
	}
}

func bucketize(lines []models.ServiceRevenue, key func(models.ServiceRevenue) string) []models.RevenueBucket {
	byKey := map[string]*models.RevenueBucket{}
	for _, l := range lines {
		k := key(l)
		b, ok := byKey[k]
		if !ok {
			b = &models.RevenueBucket{Key: k}
			byKey[k] = b
		}
		b.Bookings += l.BookingsCount
		b.Revenue += l.Revenue
		b.Cost += l.Cost
		b.Commission += l.Commission
		b.NetRevenue += l.NetRevenue
	}
	out := make([]models.RevenueBucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Revenue derives the revenue dashboard from the catalogue's pricing fields.
func (s *DefaultAdminService) Revenue(ctx context.Context) (*models.RevenueReport, error) {
	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	report := &models.RevenueReport{Services: make([]models.ServiceRevenue, 0, len(services))}
	for _, svc := range services {
		line := serviceRevenue(svc)
		report.Services = append(report.Services, line)
		report.TotalRevenue += line.Revenue
		report.TotalCost += line.Cost
		report.TotalCommission += line.Commission
		report.Profit += line.NetRevenue
	}
	report.ByCategory = bucketize(report.Services, func(l models.ServiceRevenue) string { return l.Category })
	report.ByArea = bucketize(report.Services, func(l models.ServiceRevenue) string { return l.Area })
	if report.TotalRevenue > 0 {
		report.AvgMarginPct = roundTo(report.Profit/report.TotalRevenue*100, 2)
	}
	return report, nil
}

func (s *DefaultAdminService) UpdateServicePricing(ctx context.Context, id string, update models.PricingUpdate) (*models.Service, error) {
	set := bson.M{}
	if update.SellPrice != nil {
		if *update.SellPrice < 0 {
			return nil, ErrInvalidPricing
		}
		set["sellPrice"] = *update.SellPrice
	}
	if update.ProviderCost != nil {
		if *update.ProviderCost < 0 {
			return nil, ErrInvalidPricing
		}
		set["providerCost"] = *update.ProviderCost
	}
	if update.CommissionPercent != nil {
		if *update.CommissionPercent < 0 || *update.CommissionPercent > 100 {
			return nil, ErrInvalidPricing
		}
		set["commissionPercent"] = *update.CommissionPercent
	}
	if len(set) == 0 {
		return nil, ErrInvalidPricing
	}

	if err := s.Services.UpdateWithDocument(ctx, id, bson.M{"$set": set}); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	s.logger().Info("Service pricing updated", zap.String("serviceId", id), zap.Any("fields", set))
	return s.Services.GetByID(ctx, id)
}
