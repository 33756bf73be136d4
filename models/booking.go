package models

import (
	"time"
)

// BookingSchemaVersion is stamped on every booking written or normalized by this service.
const BookingSchemaVersion = 2

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingAssigned BookingStatus = "assigned"
)

// BookedService is one cart line copied onto the booking.
type BookedService struct {
	Category   string  `bson:"category" json:"category"`
	SubService string  `bson:"subService" json:"subService"`
	Price      float64 `bson:"price" json:"price"`
}

type Address struct {
	Line1    string `bson:"line1" json:"line1"`
	District string `bson:"district" json:"district"`
	State    string `bson:"state" json:"state"`
	Pincode  string `bson:"pincode" json:"pincode"`
}

// Booking is a customer's service request. It is written once at checkout and never updated.
type Booking struct {
	ID               string          `bson:"id" json:"id"`
	SchemaVersion    int             `bson:"schemaVersion" json:"schemaVersion"`
	UserID           string          `bson:"userId" json:"userId"`
	Name             string          `bson:"name" json:"name"`
	Email            string          `bson:"email" json:"email"`
	Phone            string          `bson:"phone" json:"phone"`
	Services         []BookedService `bson:"services" json:"services"`
	Address          Address         `bson:"address" json:"address"`
	Date             string          `bson:"date" json:"date"`
	TimeSlot         string          `bson:"timeSlot" json:"timeSlot"`
	TotalAmount      float64         `bson:"totalAmount" json:"totalAmount"`
	Status           BookingStatus   `bson:"status" json:"status"`
	AssignedProvider *Provider       `bson:"assignedProvider" json:"assignedProvider"` // Embedded snapshot, null when pending.
	RequestID        string          `bson:"requestId" json:"requestId"`               // Display only, not unique.
	CreatedAt        time.Time       `bson:"createdAt" json:"createdAt"`
}

// PrimaryCategory is the category of the first booked service, "General" when unknown.
func (b Booking) PrimaryCategory() string {
	if len(b.Services) > 0 && b.Services[0].Category != "" {
		return b.Services[0].Category
	}
	return "General"
}

// PrimaryService is the name of the first booked service, "Service" when unknown.
func (b Booking) PrimaryService() string {
	if len(b.Services) > 0 && b.Services[0].SubService != "" {
		return b.Services[0].SubService
	}
	return "Service"
}

// BookingRecord is a booking document as read back from the store. Older
// checkout versions flattened the first service and the address parts onto
// the top level of the document; Normalize folds them into the nested shape.
type BookingRecord struct {
	Booking `bson:",inline"`

	Category    string   `bson:"category,omitempty"`
	SubService  string   `bson:"subService,omitempty"`
	ServiceName string   `bson:"serviceName,omitempty"`
	Price       *float64 `bson:"price,omitempty"`
	District    string   `bson:"district,omitempty"`
	State       string   `bson:"state,omitempty"`
	Pincode     string   `bson:"pincode,omitempty"`
}

// Normalize returns the canonical booking for any stored shape.
func (r BookingRecord) Normalize() Booking {
	b := r.Booking

	if len(b.Services) == 0 && (r.Category != "" || r.SubService != "" || r.ServiceName != "" || r.Price != nil) {
		svc := BookedService{Category: r.Category, SubService: r.SubService}
		if svc.SubService == "" {
			svc.SubService = r.ServiceName
		}
		if r.Price != nil {
			svc.Price = *r.Price
		}
		b.Services = []BookedService{svc}
	}

	if b.Address.District == "" {
		b.Address.District = r.District
	}
	if b.Address.State == "" {
		b.Address.State = r.State
	}
	if b.Address.Pincode == "" {
		b.Address.Pincode = r.Pincode
	}

	if b.TotalAmount == 0 {
		for _, s := range b.Services {
			b.TotalAmount += s.Price
		}
	}

	if b.Status == "" {
		b.Status = BookingPending
		if b.AssignedProvider != nil {
			b.Status = BookingAssigned
		}
	}

	b.SchemaVersion = BookingSchemaVersion
	return b
}

// BookingWithFeedback pairs a booking with the feedback left against it, if any.
type BookingWithFeedback struct {
	Booking  Booking   `json:"booking"`
	Feedback *Feedback `json:"feedback,omitempty"`
}
