package routes

import (
	"time"

	"sevasetu/config"
	"sevasetu/handlers"
	"sevasetu/middleware"
	"sevasetu/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalogue and address lookups.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.GetAvailableServices)
		api.GET("/services/:id", hb.GetServiceByID)
		api.GET("/geo/pincode/:pincode", hb.LookupPincode)
		api.GET("/geo/reverse", hb.ReverseGeocode)
		api.POST("/support", hb.CreateTicket)
	}
}

// RegisterCartRoutes registers the anonymous cart.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.CartSession())
		api.GET("", hb.GetCart)
		api.DELETE("", hb.ClearCart)
		api.POST("/items", hb.AddItem)
		api.DELETE("/items/:name", hb.RemoveItem)
	}
}

// RegisterBookingRoutes registers checkout and everything keyed to the
// caller's identity.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/bookings/time-slots", hb.TimeSlots)

	customer := r.Group("/api")
	{
		customer.Use(middleware.CartSession(), hb.Identity)
		customer.POST("/bookings/checkout", hb.Checkout)
		customer.GET("/bookings/last", hb.LastBooking)
		customer.GET("/bookings/mine", hb.MyBookings)

		customer.POST("/orders", hb.CreateOrder)
		customer.GET("/orders/mine", hb.MyOrders)

		customer.POST("/feedback", hb.SubmitFeedback)
		customer.GET("/feedback/draft", hb.FeedbackDraft)
		customer.GET("/feedback/mine", hb.MyFeedback)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.AdminLogin)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(hb.AdminAuth)
		adminGroup.GET("/dashboard", hb.Dashboard)
		adminGroup.GET("/providers", hb.ListProviders)
		adminGroup.POST("/providers/:id/enable", hb.ReenableProvider)
		adminGroup.GET("/bookings/assigned", hb.AssignedBookings)
		adminGroup.GET("/orders", hb.ListOrders)
		adminGroup.GET("/orders/stats", hb.OrderStats)
		adminGroup.PATCH("/orders/:id/status", hb.UpdateOrderStatus)
		adminGroup.GET("/feedback", hb.FeedbackSummary)
		adminGroup.GET("/revenue", hb.Revenue)
		adminGroup.PATCH("/services/:id/pricing", hb.UpdatePricing)
		adminGroup.POST("/services/:id/image", hb.UploadServiceImage)
		adminGroup.GET("/tickets", hb.ListTickets)
		adminGroup.GET("/tickets/summary", hb.TicketSummary)
		adminGroup.PATCH("/tickets/:id/status", hb.UpdateTicketStatus)
		adminGroup.GET("/live", hb.AdminFeed)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", utils.CartIDHeader},
		ExposeHeaders: []string{"Content-Length", utils.CartIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins := config.AppConfig.AllowedOrigins(); len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))
	if hb.RequestLog != nil {
		r.Use(hb.RequestLog)
	}
	if hb.RateLimit != nil {
		r.Use(hb.RateLimit)
	}

	RegisterHealthRoute(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
