package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/pizzahub/pizzahub-api/controllers/cart"
	menuControllers "github.com/pizzahub/pizzahub-api/controllers/menu"
)

// SetupStorefrontRoutes registers the menu and cart endpoints.
func SetupStorefrontRoutes(r *gin.Engine, s *Stores) {
	menuGroup := r.Group("/menu")
	{
		menuGroup.GET("/pizzas", menuControllers.GetPizzas(s.Catalog))
		menuGroup.GET("/pizzas/:id", menuControllers.GetPizzaByID(s.Catalog))
		menuGroup.GET("/toppings", menuControllers.GetToppings(s.Catalog))
	}

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(s.Cart))
		cartGroup.GET("/summary", cartControllers.GetCartSummary(s.Cart))
		cartGroup.POST("", cartControllers.AddCartItem(s.Catalog, s.Cart))
		cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(s.Cart))
		cartGroup.DELETE("", cartControllers.ClearCart(s.Cart))
	}
}
