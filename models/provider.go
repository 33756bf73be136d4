package models

import (
	"time"
)

// Provider is a registered service professional stored in service_providers.
// Available is the only field the booking flow mutates.
type Provider struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Category      string    `bson:"category" json:"category"`
	SubCategory   string    `bson:"subCategory,omitempty" json:"subCategory,omitempty"`
	City          string    `bson:"city,omitempty" json:"city,omitempty"`
	District      string    `bson:"district" json:"district"`
	State         string    `bson:"state" json:"state"`
	Pincode       string    `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Rating        float64   `bson:"rating" json:"rating"` // Missing ratings decode as 0.
	Verified      bool      `bson:"verified" json:"verified"`
	Available     bool      `bson:"available" json:"available"`
	JobsCompleted int       `bson:"jobsCompleted" json:"jobsCompleted"`
	Tags          []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt     time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Eligible reports whether the provider may be assigned a request for category and district.
func (p Provider) Eligible(category, district string) bool {
	return p.Verified && p.Available && p.Category == category && p.District == district
}

// ProviderFilter narrows admin provider listings. Empty fields are ignored.
type ProviderFilter struct {
	Category  string `form:"category"`
	District  string `form:"district"`
	Search    string `form:"q"`
	Available *bool  `form:"available"`
}
