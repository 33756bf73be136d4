package handlers

import (
	"net/http"

	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler reports the last dependency check. It answers 503 when a
// dependency was unreachable.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		getLogger(c).Warn("Health check degraded", zap.Bool("mongo", status.Mongo), zap.Bools("redis", status.Redis))
	}
	c.JSON(code, gin.H{"status": http.StatusText(code), "dependencies": status})
}
