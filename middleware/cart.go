package middleware

import (
	"strings"

	"sevasetu/services/cart"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
)

const cartIDKey = "cartID"

// CartSession makes sure every request carries a cart id. A new id is issued
// in the X-Cart-ID response header when the client sent none.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(utils.CartIDHeader))
		if id == "" {
			id = cart.NewCartID()
		}
		c.Header(utils.CartIDHeader, id)
		c.Set(cartIDKey, id)
		c.Next()
	}
}

func GetCartID(c *gin.Context) string {
	return c.GetString(cartIDKey)
}
