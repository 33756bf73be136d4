package models

// CartItem is one selected service. Items are deduplicated by Name.
type CartItem struct {
	ServiceID string  `json:"serviceId,omitempty"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price,omitempty"`
}
