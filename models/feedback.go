package models

import "time"

// FeedbackTags is the fixed set of tags a customer may attach.
var FeedbackTags = []string{
	"Service Quality",
	"Value for Money",
	"Friendly Staff",
	"Ease of Booking",
	"Overall Experience",
}

// Feedback is a rating left against a booking. BookingID is the link to the booking.
type Feedback struct {
	ID          string    `bson:"id" json:"id"`
	BookingID   string    `bson:"bookingId" json:"bookingId"`
	UserID      string    `bson:"userId" json:"userId"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Category    string    `bson:"category" json:"category"`
	ServiceName string    `bson:"serviceName" json:"serviceName"`
	Place       string    `bson:"place" json:"place"`
	Rating      int       `bson:"rating" json:"rating"`
	Comment     string    `bson:"comment" json:"comment"`
	Tags        []string  `bson:"tags" json:"tags"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// FeedbackDraft is the prefilled form offered after checkout.
type FeedbackDraft struct {
	BookingID   string `json:"bookingId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	ServiceName string `json:"serviceName"`
	Place       string `json:"place"`
}

type CategoryRating struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

type FeedbackSummary struct {
	Items      []Feedback       `json:"items"`
	Categories []CategoryRating `json:"categories"`
}
