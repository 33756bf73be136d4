package handlers

import (
	"sevasetu/services/live"

	"github.com/gin-gonic/gin"
)

type LiveHandler struct {
	Hub *live.Hub
}

// AdminFeed handles GET /api/admin/live (websocket upgrade).
func (h *LiveHandler) AdminFeed(c *gin.Context) {
	subject := c.GetString("adminSubject")
	h.Hub.ServeWS(c.Writer, c.Request, subject+"@"+c.ClientIP())
}
