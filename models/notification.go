package models

// BookingAssignedPayload is queued when checkout reserves a provider.
type BookingAssignedPayload struct {
	BookingID    string `json:"bookingId"`
	RequestID    string `json:"requestId"`
	ProviderID   string `json:"providerId"`
	ProviderName string `json:"providerName"`
	Category     string `json:"category"`
	District     string `json:"district"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
}

// SupportTicketPayload is queued when a contact-form ticket is created.
type SupportTicketPayload struct {
	TicketID string `json:"ticketId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}
