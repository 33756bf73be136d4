package handlers

import (
	"errors"
	"net/http"

	"sevasetu/models"
	"sevasetu/services/admin"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	AdminSvc admin.AdminService
	Logger   *zap.Logger
}

func NewAdminHandler(svc admin.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{AdminSvc: svc, Logger: orNop(logger)}
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var body struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	token, err := h.AdminSvc.Login(c.Request.Context(), body.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Incorrect password", "")
			return
		}
		h.Logger.Error("Admin login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetAllProvidersHandler handles GET /api/admin/providers.
func (h *AdminHandler) GetAllProvidersHandler(c *gin.Context) {
	var filter models.ProviderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	providers, err := h.AdminSvc.ListProviders(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load providers", err.Error())
		return
	}
	c.JSON(http.StatusOK, providers)
}

// ReenableProviderHandler handles POST /api/admin/providers/:id/enable.
func (h *AdminHandler) ReenableProviderHandler(c *gin.Context) {
	id := c.Param("id")
	err := h.AdminSvc.ReenableProvider(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"id": id, "available": true})
	case errors.Is(err, admin.ErrProviderNotFound):
		utils.JSONError(c, http.StatusNotFound, "Provider not found", id)
	default:
		h.Logger.Error("Failed to re-enable provider", zap.String("providerId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to enable provider", err.Error())
	}
}

// AssignedBookingsHandler handles GET /api/admin/bookings/assigned.
func (h *AdminHandler) AssignedBookingsHandler(c *gin.Context) {
	bookings, err := h.AdminSvc.AssignedBookings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DashboardHandler handles GET /api/admin/dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	summary, err := h.AdminSvc.Dashboard(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load dashboard", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// FeedbackSummaryHandler handles GET /api/admin/feedback?q=.
func (h *AdminHandler) FeedbackSummaryHandler(c *gin.Context) {
	summary, err := h.AdminSvc.FeedbackSummary(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RevenueHandler handles GET /api/admin/revenue.
func (h *AdminHandler) RevenueHandler(c *gin.Context) {
	report, err := h.AdminSvc.Revenue(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load revenue", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdatePricingHandler handles PATCH /api/admin/services/:id/pricing.
func (h *AdminHandler) UpdatePricingHandler(c *gin.Context) {
	var update models.PricingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	svc, err := h.AdminSvc.UpdateServicePricing(c.Request.Context(), c.Param("id"), update)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, svc)
	case errors.Is(err, admin.ErrInvalidPricing):
		utils.JSONError(c, http.StatusBadRequest, "Invalid pricing", err.Error())
	case errors.Is(err, admin.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "Service not found", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update pricing", err.Error())
	}
}
