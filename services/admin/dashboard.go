package admin

import (
	"context"
	"math"
	"sort"
	"strings"

	"sevasetu/models"
)

const noCategory = "N/A"

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func (s *DefaultAdminService) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	bookings, err := s.Bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	feedback, err := s.Feedback.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		TotalBookings: len(bookings),
		TotalFeedback: len(feedback),
		TopCategory:   noCategory,
	}
	if len(feedback) > 0 {
		var sum int
		for _, f := range feedback {
			sum += f.Rating
		}
		summary.AvgRating = roundTo(float64(sum)/float64(len(feedback)), 1)
	}

	counts := map[string]int{}
	for _, b := range bookings {
		counts[b.PrimaryCategory()]++
	}
	best := 0
	for category, n := range counts {
		// Ties go to the alphabetically first category.
		if n > best || (n == best && category < summary.TopCategory) {
			best = n
			summary.TopCategory = category
		}
	}
	return summary, nil
}

// FeedbackSummary lists feedback whose service name or category contains
// search, with the average rating per category.
func (s *DefaultAdminService) FeedbackSummary(ctx context.Context, search string) (*models.FeedbackSummary, error) {
	all, err := s.Feedback.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))

	out := &models.FeedbackSummary{Items: []models.Feedback{}, Categories: []models.CategoryRating{}}
	sums := map[string]int{}
	counts := map[string]int{}
	for _, f := range all {
		if needle != "" &&
			!strings.Contains(strings.ToLower(f.ServiceName), needle) &&
			!strings.Contains(strings.ToLower(f.Category), needle) {
			continue
		}
		out.Items = append(out.Items, f)
		sums[f.Category] += f.Rating
		counts[f.Category]++
	}
	for category, n := range counts {
		out.Categories = append(out.Categories, models.CategoryRating{
			Category: category,
			Average:  roundTo(float64(sums[category])/float64(n), 1),
			Count:    n,
		})
	}
	sort.Slice(out.Categories, func(i, j int) bool {
		return out.Categories[i].Category < out.Categories[j].Category
	})
	return out, nil
}
