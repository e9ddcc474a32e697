package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzahub/pizzahub-api/models"
	"github.com/pizzahub/pizzahub-api/store"
)

type AddItemInput struct {
	PizzaID    int    `json:"pizza_id" binding:"required"`
	Size       string `json:"size" binding:"required"`
	Crust      string `json:"crust" binding:"required"`
	ToppingIDs []int  `json:"topping_ids"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// POST /cart
func AddCartItem(catalog *store.Catalog, cart *store.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pizza, ok := catalog.Pizza(input.PizzaID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pizza does not exist"})
			return
		}

		toppings := catalog.ToppingSelections(input.ToppingIDs)
		item, err := cart.AddItem(pizza, models.PizzaSize(input.Size), models.CrustType(input.Crust), toppings, input.Quantity)
		if err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// GET /cart
func GetCart(cart *store.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items(),
			"count": cart.TotalItemCount(),
		})
	}
}

// GET /cart/summary
func GetCartSummary(cart *store.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cart.Summary())
	}
}

// DELETE /cart/:item_id
func DeleteCartItem(cart *store.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("item_id")
		if !cart.RemoveItem(itemID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(cart *store.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
