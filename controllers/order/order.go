package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzahub/pizzahub-api/models"
	"github.com/pizzahub/pizzahub-api/store"
)

// -------- Request Structs --------

type PlaceOrderInput struct {
	Street        string `json:"street"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	CardNumber    string `json:"card_number"`
	CardExpiry    string `json:"card_expiry"`
	CardCVV       string `json:"card_cvv"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// -------- Handlers --------

// POST /orders/place
func PlaceOrderHandler(orders *store.Orders, session *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method, err := models.ParsePaymentMethod(input.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.Place(
			session.Current(),
			store.CheckoutAddress{Street: input.Street, City: input.City, Zip: input.Zip},
			method,
			store.CardDetails{Number: input.CardNumber, Expiry: input.CardExpiry, CVV: input.CardCVV},
		)
		if err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/mine
func GetMyOrdersHandler(orders *store.Orders, session *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.Current()
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login first"})
			return
		}
		c.JSON(http.StatusOK, orders.ForUser(user.ID))
	}
}

// GET /admin/orders
func GetAllOrdersHandler(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.All())
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.UpdateStatus(orderID, status)
		if err != nil {
			if errors.Is(err, store.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// POST /orders/:orderID/cancel
func CancelOrderHandler(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		order, err := orders.Cancel(orderID)
		if err != nil {
			var terr *models.InvalidTransitionError
			switch {
			case errors.Is(err, store.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.As(err, &terr):
				c.JSON(http.StatusConflict, gin.H{"error": "Cannot cancel order at this stage"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			}
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// POST /orders/:orderID/reorder
func ReorderHandler(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		items, err := orders.Reorder(orderID)
		if err != nil {
			if errors.Is(err, store.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Items added to cart",
			"items":   items,
		})
	}
}
