package models

// DashboardSummary backs the admin landing page.
type DashboardSummary struct {
	TotalBookings int     `json:"totalBookings"`
	TotalFeedback int     `json:"totalFeedback"`
	AvgRating     float64 `json:"avgRating"` // One decimal place.
	TopCategory   string  `json:"topCategory"`
}

// ServiceRevenue is the per-service line of the revenue dashboard.
type ServiceRevenue struct {
	ServiceID         string  `json:"serviceId"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Area              string  `json:"area"`
	SellPrice         float64 `json:"sellPrice"`
	ProviderCost      float64 `json:"providerCost"`
	CommissionPercent float64 `json:"commissionPercent"`
	CommissionAmount  float64 `json:"commissionAmount"`
	BookingsCount     int     `json:"bookingsCount"`
	Revenue           float64 `json:"revenue"`
	Cost              float64 `json:"cost"`
	Commission        float64 `json:"commission"`
	NetRevenue        float64 `json:"netRevenue"`
}

// RevenueBucket aggregates service lines by category or area.
type RevenueBucket struct {
	Key        string  `json:"key"`
	Bookings   int     `json:"bookings"`
	Revenue    float64 `json:"revenue"`
	Cost       float64 `json:"cost"`
	Commission float64 `json:"commission"`
	NetRevenue float64 `json:"netRevenue"`
}

type RevenueReport struct {
	Services        []ServiceRevenue `json:"services"`
	ByCategory      []RevenueBucket  `json:"byCategory"`
	ByArea          []RevenueBucket  `json:"byArea"`
	TotalRevenue    float64          `json:"totalRevenue"`
	TotalCost       float64          `json:"totalCost"`
	TotalCommission float64          `json:"totalCommission"`
	Profit          float64          `json:"profit"`
	AvgMarginPct    float64          `json:"avgMarginPct"`
}
