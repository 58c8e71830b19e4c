package handlers

import (
	"net/http"

	"asclepius/utils"

	"github.com/gin-gonic/gin"
)

// HealthzHandler handles GET /healthz with the latest health snapshot.
// Any backing store that failed its last probe degrades the response to
// 503 so load balancers stop routing here.
func HealthzHandler(c *gin.Context) {
	health := utils.GetHealthStatus()

	status := http.StatusOK
	if !health.Healthy() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}
