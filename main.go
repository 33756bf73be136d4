package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sevasetu/config"
	"sevasetu/cron"
	"sevasetu/database"
	"sevasetu/database/repository"
	"sevasetu/handlers"
	"sevasetu/middleware"
	"sevasetu/routes"
	"sevasetu/services/admin"
	"sevasetu/services/booking"
	"sevasetu/services/cart"
	"sevasetu/services/catalog"
	"sevasetu/services/feedback"
	"sevasetu/services/geo"
	"sevasetu/services/live"
	"sevasetu/services/notification"
	"sevasetu/services/order"
	"sevasetu/services/storage"
	"sevasetu/services/support"
	"sevasetu/services/tasks"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.RedisClients(), database.MongoClient)

	// Live admin feed.
	hub := live.NewHub(logger)
	go hub.Run()

	// Background notifications.
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	dispatcher := tasks.NewAsynqDispatcher(queueClient, logger)
	notificationService, err := notification.NewDefaultNotificationService(utils.FCMClient, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize notification service", zap.Error(err))
	}
	worker := cron.InitNotificationWorker(notificationService, logger)

	// Image uploads are optional; without credentials the upload route answers 503.
	var imageStore storage.StorageService
	if cloudinaryStorage, err := utils.Cloudinary(logger); err != nil {
		logger.Warn("main: cloudinary storage disabled", zap.Error(err))
	} else {
		imageStore = cloudinaryStorage
	}

	// repositories.
	repos := repository.NewMongoRepositories()

	// services.
	cartStore := cart.NewRedisStore(utils.GetCartClient(), cfg.CartTTL())
	cartService := cart.NewDefaultCartService(cartStore, logger)
	lookup := geo.NewHTTPLookup(cfg.PincodeAPIURL, cfg.ReverseGeocodeAPIURL, cfg.LookupTimeout(),
		utils.GetCacheClient(), cfg.LookupCacheTTL(), logger)
	lastBooking := booking.NewRedisLastBookingStore(utils.GetCacheClient(), cfg.LastBookingTTL())
	matcher := booking.NewDefaultMatchingService(repos.Providers, cfg.MatcherMode, cfg.MatcherMaxAttempts, logger)

	bookingService := &booking.DefaultBookingService{
		Carts:        cartStore,
		Bookings:     repos.Bookings,
		Feedback:     repos.Feedback,
		Matcher:      matcher,
		Geo:          lookup,
		LastBookings: lastBooking,
		Tasks:        dispatcher,
		Events:       hub,
		Logger:       logger,
	}
	catalogService := catalog.NewDefaultCatalogService(repos.Services, imageStore, logger)
	orderService := order.NewDefaultOrderService(repos.Orders, hub, logger)
	feedbackService := feedback.NewDefaultFeedbackService(repos.Feedback, repos.Bookings, lastBooking, logger)
	supportService := support.NewDefaultSupportService(repos.Tickets, dispatcher, hub, logger)
	adminService := &admin.DefaultAdminService{
		Providers:    repos.Providers,
		Bookings:     repos.Bookings,
		Feedback:     repos.Feedback,
		Services:     repos.Services,
		Events:       hub,
		Logger:       logger,
		PasswordHash: cfg.AdminPasswordHash,
		TokenTTL:     cfg.AdminTokenTTL(),
	}

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	geoHandler := handlers.NewGeoHandler(lookup)
	cartHandler := handlers.NewCartHandler(cartService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	orderHandler := handlers.NewOrderHandler(orderService, logger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, logger)
	supportHandler := handlers.NewSupportHandler(supportService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger)
	liveHandler := &handlers.LiveHandler{Hub: hub}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Identity:   middleware.Identity(utils.AuthClient, cfg.AllowGuests),
		AdminAuth:  middleware.JWTAuthAdminMiddleware(),
		RateLimit:  middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin),
		RequestLog: middleware.RequestLogger(logger),

		// Catalog and lookups.
		GetAvailableServices: catalogHandler.GetAvailableServices,
		GetServiceByID:       catalogHandler.GetServiceByID,
		LookupPincode:        geoHandler.LookupPincode,
		ReverseGeocode:       geoHandler.ReverseGeocode,

		// Cart endpoints.
		GetCart:    cartHandler.GetCart,
		AddItem:    cartHandler.AddItem,
		RemoveItem: cartHandler.RemoveItem,
		ClearCart:  cartHandler.ClearCart,

		// Booking endpoints.
		Checkout:    bookingHandler.Checkout,
		LastBooking: bookingHandler.LastBooking,
		MyBookings:  bookingHandler.MyBookings,
		TimeSlots:   bookingHandler.TimeSlots,

		// Orders, feedback and support.
		CreateOrder:    orderHandler.CreateOrder,
		MyOrders:       orderHandler.MyOrders,
		SubmitFeedback: feedbackHandler.SubmitFeedback,
		FeedbackDraft:  feedbackHandler.FeedbackDraft,
		MyFeedback:     feedbackHandler.MyFeedback,
		CreateTicket:   supportHandler.CreateTicket,

		// Admin endpoints.
		AdminLogin:         adminHandler.LoginHandler,
		ListProviders:      adminHandler.GetAllProvidersHandler,
		ReenableProvider:   adminHandler.ReenableProviderHandler,
		AssignedBookings:   adminHandler.AssignedBookingsHandler,
		ListOrders:         orderHandler.ListOrders,
		UpdateOrderStatus:  orderHandler.UpdateOrderStatus,
		OrderStats:         orderHandler.OrderStats,
		Dashboard:          adminHandler.DashboardHandler,
		FeedbackSummary:    adminHandler.FeedbackSummaryHandler,
		Revenue:            adminHandler.RevenueHandler,
		UpdatePricing:      adminHandler.UpdatePricingHandler,
		UploadServiceImage: catalogHandler.UploadServiceImage,
		ListTickets:        supportHandler.ListTickets,
		UpdateTicketStatus: supportHandler.UpdateTicketStatus,
		TicketSummary:      supportHandler.TicketSummary,
		AdminFeed:          liveHandler.AdminFeed,

		Health: handlers.HealthHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	worker.Shutdown()
	hub.Stop()
	stopMonitor()
	if err := queueClient.Close(); err != nil {
		logger.Warn("main: failed to close queue client", zap.Error(err))
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect database", zap.Error(err))
	}
	_ = logger.Sync()

	logger.Sugar().Info("main: server stopped gracefully")
}
