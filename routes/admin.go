package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/pizzahub/pizzahub-api/controllers/admin"
	menuControllers "github.com/pizzahub/pizzahub-api/controllers/menu"
	orderControllers "github.com/pizzahub/pizzahub-api/controllers/order"
	"github.com/pizzahub/pizzahub-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the
// API-key middleware.
func SetupAdminRoutes(r *gin.Engine, s *Stores, adminAPIKey string) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(adminAPIKey))
	{
		// Order management: list, privileged status override, export
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(s.Orders))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(s.Orders))
			orderAdmin.GET("/export-excel", adminController.ExportOrdersToExcel(s.Orders))
		}

		// Menu management (session-scoped)
		pizzaAdmin := adminGroup.Group("/pizzas")
		{
			pizzaAdmin.PUT("/:id", menuControllers.UpdatePizza(s.Catalog))
			pizzaAdmin.DELETE("/:id", menuControllers.DeletePizza(s.Catalog))
		}

		// Dashboard figures
		adminGroup.GET("/analytics", adminController.GetAnalytics(s.Orders))
	}
}
