package menuControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pizzahub/pizzahub-api/store"
)

// GET /menu/pizzas?category=&search=
func GetPizzas(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", "all")
		search := c.Query("search")
		c.JSON(http.StatusOK, catalog.Pizzas(category, search))
	}
}

// GET /menu/pizzas/:id
func GetPizzaByID(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pizza ID"})
			return
		}

		pizza, ok := catalog.Pizza(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
			return
		}
		c.JSON(http.StatusOK, pizza)
	}
}

// GET /menu/toppings
func GetToppings(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Toppings())
	}
}

type UpdatePizzaInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price"`
}

// PUT /admin/pizzas/:id — session-scoped edit, not persisted.
func UpdatePizza(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pizza ID"})
			return
		}

		var input UpdatePizzaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.BasePrice != nil && *input.BasePrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Base price must not be negative"})
			return
		}

		pizza, ok := catalog.UpdatePizza(id, store.PizzaUpdate{
			Name:        input.Name,
			Description: input.Description,
			BasePrice:   input.BasePrice,
		})
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
			return
		}
		c.JSON(http.StatusOK, pizza)
	}
}

// DELETE /admin/pizzas/:id — session-scoped removal, not persisted.
func DeletePizza(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pizza ID"})
			return
		}

		if !catalog.DeletePizza(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Pizza deleted successfully"})
	}
}
