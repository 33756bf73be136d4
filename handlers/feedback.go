package handlers

import (
	"errors"
	"net/http"

	"sevasetu/middleware"
	"sevasetu/services/booking"
	"sevasetu/services/feedback"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	FeedbackSvc feedback.FeedbackService
	Logger      *zap.Logger
}

func NewFeedbackHandler(svc feedback.FeedbackService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{FeedbackSvc: svc, Logger: orNop(logger)}
}

// SubmitFeedback handles POST /api/feedback.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req feedback.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	f, err := h.FeedbackSvc.Submit(c.Request.Context(), middleware.GetIdentity(c), req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, f)
	case errors.Is(err, feedback.ErrInvalidRating),
		errors.Is(err, feedback.ErrMissingBookingID),
		errors.Is(err, feedback.ErrInvalidTag):
		utils.JSONError(c, http.StatusBadRequest, "Invalid feedback", err.Error())
	case errors.Is(err, feedback.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", req.BookingID)
	default:
		h.Logger.Error("Failed to save feedback", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit feedback", err.Error())
	}
}

// FeedbackDraft handles GET /api/feedback/draft.
func (h *FeedbackHandler) FeedbackDraft(c *gin.Context) {
	owner := booking.OwnerKey(middleware.GetIdentity(c), middleware.GetCartID(c))
	draft, err := h.FeedbackSvc.Prefill(c.Request.Context(), owner)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, draft)
	case errors.Is(err, feedback.ErrNoRecentBooking):
		utils.JSONError(c, http.StatusNotFound, "No recent booking to review", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to prepare feedback form", err.Error())
	}
}

// MyFeedback handles GET /api/feedback/mine.
func (h *FeedbackHandler) MyFeedback(c *gin.Context) {
	items, err := h.FeedbackSvc.ListForUser(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}
