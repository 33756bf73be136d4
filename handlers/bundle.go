package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the middleware they need.
type HandlerBundle struct {
	// Identity resolves customers on booking, order and feedback routes.
	Identity   gin.HandlerFunc
	AdminAuth  gin.HandlerFunc
	RateLimit  gin.HandlerFunc
	RequestLog gin.HandlerFunc

	// Catalog and address lookups
	GetAvailableServices gin.HandlerFunc
	GetServiceByID       gin.HandlerFunc
	LookupPincode        gin.HandlerFunc
	ReverseGeocode       gin.HandlerFunc

	// Cart
	GetCart    gin.HandlerFunc
	AddItem    gin.HandlerFunc
	RemoveItem gin.HandlerFunc
	ClearCart  gin.HandlerFunc

	// Booking
	Checkout    gin.HandlerFunc
	LastBooking gin.HandlerFunc
	MyBookings  gin.HandlerFunc
	TimeSlots   gin.HandlerFunc

	// Orders
	CreateOrder gin.HandlerFunc
	MyOrders    gin.HandlerFunc

	// Feedback
	SubmitFeedback gin.HandlerFunc
	FeedbackDraft  gin.HandlerFunc
	MyFeedback     gin.HandlerFunc

	// Support
	CreateTicket gin.HandlerFunc

	// Admin
	AdminLogin         gin.HandlerFunc
	ListProviders      gin.HandlerFunc
	ReenableProvider   gin.HandlerFunc
	AssignedBookings   gin.HandlerFunc
	ListOrders         gin.HandlerFunc
	UpdateOrderStatus  gin.HandlerFunc
	OrderStats         gin.HandlerFunc
	Dashboard          gin.HandlerFunc
	FeedbackSummary    gin.HandlerFunc
	Revenue            gin.HandlerFunc
	UpdatePricing      gin.HandlerFunc
	UploadServiceImage gin.HandlerFunc
	ListTickets        gin.HandlerFunc
	UpdateTicketStatus gin.HandlerFunc
	TicketSummary      gin.HandlerFunc
	AdminFeed          gin.HandlerFunc

	Health gin.HandlerFunc
}
