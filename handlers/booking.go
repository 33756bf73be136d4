package handlers

import (
	"errors"
	"net/http"

	"sevasetu/middleware"
	"sevasetu/services/booking"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: orNop(logger)}
}

// Checkout handles POST /api/bookings/checkout.
func (h *BookingHandler) Checkout(c *gin.Context) {
	var req booking.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	identity := middleware.GetIdentity(c)
	cartID := middleware.GetCartID(c)
	result, err := h.BookingSvc.Checkout(c.Request.Context(), identity, cartID, req)
	if err != nil {
		var verr *booking.ValidationError
		switch {
		case errors.As(err, &verr):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": verr.Message, "field": verr.Field})
		case errors.Is(err, booking.ErrCartEmpty):
			utils.JSONError(c, http.StatusBadRequest, "Your cart is empty!", "")
		default:
			h.Logger.Error("Checkout failed", zap.String("cartId", cartID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Booking failed. Please try again.", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LastBooking handles GET /api/bookings/last.
func (h *BookingHandler) LastBooking(c *gin.Context) {
	owner := booking.OwnerKey(middleware.GetIdentity(c), middleware.GetCartID(c))
	b, err := h.BookingSvc.LastBooking(c.Request.Context(), owner)
	if err != nil {
		h.Logger.Error("Failed to load last booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking", err.Error())
		return
	}
	if b == nil {
		utils.JSONError(c, http.StatusNotFound, "No recent booking", "")
		return
	}
	c.JSON(http.StatusOK, b)
}

// MyBookings handles GET /api/bookings/mine.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.BookingSvc.MyBookings(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// TimeSlots handles GET /api/bookings/time-slots.
func (h *BookingHandler) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": booking.TimeSlots})
}
