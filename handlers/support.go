package handlers

import (
	"errors"
	"net/http"

	"sevasetu/services/support"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SupportHandler struct {
	SupportSvc support.SupportService
	Logger     *zap.Logger
}

func NewSupportHandler(svc support.SupportService, logger *zap.Logger) *SupportHandler {
	return &SupportHandler{SupportSvc: svc, Logger: orNop(logger)}
}

// CreateTicket handles POST /api/support.
func (h *SupportHandler) CreateTicket(c *gin.Context) {
	var req support.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	t, err := h.SupportSvc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, support.ErrInvalidTicket) {
			utils.JSONError(c, http.StatusBadRequest, "Please fill all required fields", err.Error())
			return
		}
		h.Logger.Error("Failed to create ticket", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send message", err.Error())
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListTickets handles GET /api/admin/tickets.
func (h *SupportHandler) ListTickets(c *gin.Context) {
	tickets, err := h.SupportSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load tickets", err.Error())
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// UpdateTicketStatus handles PATCH /api/admin/tickets/:id/status.
func (h *SupportHandler) UpdateTicketStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	err := h.SupportSvc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": body.Status})
	case errors.Is(err, support.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "Unknown ticket status", err.Error())
	case errors.Is(err, support.ErrTicketNotFound):
		utils.JSONError(c, http.StatusNotFound, "Ticket not found", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update ticket", err.Error())
	}
}

// TicketSummary handles GET /api/admin/tickets/summary.
func (h *SupportHandler) TicketSummary(c *gin.Context) {
	sum, err := h.SupportSvc.Summary(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load ticket summary", err.Error())
		return
	}
	c.JSON(http.StatusOK, sum)
}
