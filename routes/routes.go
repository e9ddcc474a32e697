package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzahub/pizzahub-api/store"
)

// Stores bundles the application stores the handlers close over.
type Stores struct {
	Catalog *store.Catalog
	Cart    *store.Cart
	Orders  *store.Orders
	Session *store.Session
}

// SetupRoutes is the single entry-point that wires up Auth, Menu, Cart,
// Order, and Admin route groups.
func SetupRoutes(r *gin.Engine, s *Stores, adminAPIKey string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes (identity is asserted, no tokens)
	SetupAuthRoutes(r, s)

	// Menu browsing and cart
	SetupStorefrontRoutes(r, s)

	// Checkout, tracking, cancellation, reorder
	SetupOrderRoutes(r, s)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, s, adminAPIKey)
}
