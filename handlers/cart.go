package handlers

import (
	"errors"
	"net/http"

	"sevasetu/middleware"
	"sevasetu/models"
	"sevasetu/services/cart"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartHandler struct {
	CartSvc cart.Service
	Logger  *zap.Logger
}

func NewCartHandler(svc cart.Service, logger *zap.Logger) *CartHandler {
	return &CartHandler{CartSvc: svc, Logger: orNop(logger)}
}

type cartResponse struct {
	ID    string            `json:"id"`
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func toCartResponse(c *cart.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return cartResponse{ID: c.ID, Items: items, Total: c.Total()}
}

func (h *CartHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidItem), errors.Is(err, cart.ErrMissingCartID):
		utils.JSONError(c, http.StatusBadRequest, "Invalid cart request", err.Error())
	default:
		h.Logger.Error("Cart store failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update cart", err.Error())
	}
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	ct, err := h.CartSvc.Get(c.Request.Context(), middleware.GetCartID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(ct))
}

// AddItem handles POST /api/cart/items. Adding a service already in the cart
// leaves it unchanged.
func (h *CartHandler) AddItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	ct, err := h.CartSvc.Add(c.Request.Context(), middleware.GetCartID(c), item)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(ct))
}

// RemoveItem handles DELETE /api/cart/items/:name.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	ct, err := h.CartSvc.Remove(c.Request.Context(), middleware.GetCartID(c), c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(ct))
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	id := middleware.GetCartID(c)
	if err := h.CartSvc.Clear(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(&cart.Cart{ID: id}))
}
