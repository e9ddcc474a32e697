package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzahub/pizzahub-api/store"
)

// GET /admin/analytics
func GetAnalytics(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.ComputeAnalytics())
	}
}
