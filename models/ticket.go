package models

import "time"

type TicketStatus string

const (
	TicketNew        TicketStatus = "new"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketEscalated  TicketStatus = "escalated"
)

// SupportTicket is a contact-form message stored in contact_messages.
type SupportTicket struct {
	ID        string       `bson:"id" json:"id"`
	Name      string       `bson:"name" json:"name"`
	Email     string       `bson:"email" json:"email"`
	Message   string       `bson:"message" json:"message"`
	Status    TicketStatus `bson:"status" json:"status"`
	CreatedAt time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time    `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type TicketSummary struct {
	Total    int `json:"total"`
	Open     int `json:"open"`
	Resolved int `json:"resolved"`
}
