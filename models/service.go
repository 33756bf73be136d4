package models

// Service is a catalogue entry. The pricing fields feed the revenue dashboard.
type Service struct {
	ID                string  `bson:"id" json:"id"`
	Name              string  `bson:"name" json:"name"`
	Category          string  `bson:"category" json:"category"`
	Price             float64 `bson:"price" json:"price"`
	Description       string  `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL          string  `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	SellPrice         float64 `bson:"sellPrice,omitempty" json:"sellPrice,omitempty"`
	ProviderCost      float64 `bson:"providerCost,omitempty" json:"providerCost,omitempty"`
	CommissionPercent float64 `bson:"commissionPercent,omitempty" json:"commissionPercent,omitempty"`
	BookingsCount     int     `bson:"bookingsCount,omitempty" json:"bookingsCount,omitempty"`
	Area              string  `bson:"area,omitempty" json:"area,omitempty"`
}

// EffectiveSellPrice falls back to the listed price when no sell price was set.
func (s Service) EffectiveSellPrice() float64 {
	if s.SellPrice > 0 {
		return s.SellPrice
	}
	return s.Price
}

// PricingUpdate carries the admin-editable pricing fields. Nil fields are left unchanged.
type PricingUpdate struct {
	SellPrice         *float64 `json:"sellPrice"`
	ProviderCost      *float64 `json:"providerCost"`
	CommissionPercent *float64 `json:"commissionPercent"`
}
