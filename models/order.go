package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses, in lifecycle order
	OrderStatusPending        OrderStatus = "pending"          // Order placed, awaiting confirmation
	OrderStatusConfirmed      OrderStatus = "confirmed"        // Confirmed by the kitchen
	OrderStatusPreparing      OrderStatus = "preparing"        // Being prepared, too late to cancel
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // Driver on the way
	OrderStatusDelivered      OrderStatus = "delivered"        // Customer received the order
	OrderStatusCancelled      OrderStatus = "cancelled"        // Cancelled before preparation

	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// ParseOrderStatus maps a string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusPreparing):
		return OrderStatusPreparing, nil
	case string(OrderStatusOutForDelivery):
		return OrderStatusOutForDelivery, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ParsePaymentMethod maps a string to a PaymentMethod.
func ParsePaymentMethod(method string) (PaymentMethod, error) {
	switch strings.ToLower(method) {
	case string(PaymentMethodCard):
		return PaymentMethodCard, nil
	case string(PaymentMethodCash):
		return PaymentMethodCash, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// Terminal reports whether no further status change is meaningful.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Order is created once at checkout and never deleted; only its status
// changes afterwards. Items is a deep snapshot of the cart, and Total is
// always Subtotal + DeliveryFee + Tax.
type Order struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	Items             []CartItem    `json:"items"`
	Address           string        `json:"address"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	Subtotal          float64       `json:"subtotal"`
	DeliveryFee       float64       `json:"delivery_fee"`
	Tax               float64       `json:"tax"`
	Total             float64       `json:"total"`
	Status            OrderStatus   `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	EstimatedDelivery time.Time     `json:"estimated_delivery"`
}

// Clone deep-copies the order, including its item snapshot.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]CartItem, len(o.Items))
		for i, item := range o.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}
