package handlers

import (
	"errors"
	"net/http"

	"sevasetu/middleware"
	"sevasetu/models"
	"sevasetu/services/order"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	OrderSvc order.OrderService
	Logger   *zap.Logger
}

func NewOrderHandler(svc order.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{OrderSvc: svc, Logger: orNop(logger)}
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var body struct {
		Items []models.OrderItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	o, err := h.OrderSvc.CreateOrder(c.Request.Context(), middleware.GetIdentity(c), body.Items)
	if err != nil {
		if errors.Is(err, order.ErrNoItems) {
			utils.JSONError(c, http.StatusBadRequest, "Order has no items", "")
			return
		}
		h.Logger.Error("Failed to create order", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create order", err.Error())
		return
	}
	c.JSON(http.StatusCreated, o)
}

// MyOrders handles GET /api/orders/mine.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.OrderSvc.ListForUser(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListOrders handles GET /api/admin/orders.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.OrderSvc.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	o, err := h.OrderSvc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, o)
	case errors.Is(err, order.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "Unknown order status", err.Error())
	case errors.Is(err, order.ErrOrderNotFound):
		utils.JSONError(c, http.StatusNotFound, "Order not found", "")
	default:
		h.Logger.Error("Failed to update order status", zap.String("orderId", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update order", err.Error())
	}
}

// OrderStats handles GET /api/admin/orders/stats.
func (h *OrderHandler) OrderStats(c *gin.Context) {
	stats, err := h.OrderSvc.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load order stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
