package repository

import (
	bookingRepo "sevasetu/database/repository/booking"
	feedbackRepo "sevasetu/database/repository/feedback"
	orderRepo "sevasetu/database/repository/order"
	providerRepo "sevasetu/database/repository/provider"
	serviceRepo "sevasetu/database/repository/service"
	ticketRepo "sevasetu/database/repository/ticket"
)

// Re-export the repository interfaces.
type (
	ProviderRepository = providerRepo.ProviderRepository
	ServiceRepository  = serviceRepo.ServiceRepository
	BookingRepository  = bookingRepo.BookingRepository
	OrderRepository    = orderRepo.OrderRepository
	FeedbackRepository = feedbackRepo.FeedbackRepository
	TicketRepository   = ticketRepo.TicketRepository
)

// Repositories holds one repository per collection.
type Repositories struct {
	Providers ProviderRepository
	Services  ServiceRepository
	Bookings  BookingRepository
	Orders    OrderRepository
	Feedback  FeedbackRepository
	Tickets   TicketRepository
}

// NewMongoRepositories builds every repository on the connected database and
// ensures their indexes.
func NewMongoRepositories() *Repositories {
	return &Repositories{
		Providers: providerRepo.NewMongoProviderRepo(),
		Services:  serviceRepo.NewMongoServiceRepo(),
		Bookings:  bookingRepo.NewMongoBookingRepo(),
		Orders:    orderRepo.NewMongoOrderRepo(),
		Feedback:  feedbackRepo.NewMongoFeedbackRepo(),
		Tickets:   ticketRepo.NewMongoTicketRepo(),
	}
}
