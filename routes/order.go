package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/pizzahub/pizzahub-api/controllers/order"
)

// SetupOrderRoutes registers the "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, s *Stores) {
	orders := r.Group("/orders")
	{
		// Checkout
		orders.POST("/place", orderControllers.PlaceOrderHandler(s.Orders, s.Session))

		// Orders of the current user, most recent last
		orders.GET("/mine", orderControllers.GetMyOrdersHandler(s.Orders, s.Session))

		// Websocket feed of order creations and status updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Cancel (guarded) and reorder
		orders.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(s.Orders))
		orders.POST("/:orderID/reorder", orderControllers.ReorderHandler(s.Orders))
	}
}
