package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzahub/pizzahub-api/models"
	"github.com/pizzahub/pizzahub-api/pricing"
	"github.com/pizzahub/pizzahub-api/storage"
)

// ErrOrderNotFound is returned when no order matches the given id.
var ErrOrderNotFound = errors.New("order not found")

// estimatedDeliveryDelay is the fixed offset promised at checkout.
const estimatedDeliveryDelay = 30 * time.Minute

// CheckoutAddress is the delivery address from the checkout form.
type CheckoutAddress struct {
	Street string
	City   string
	Zip    string
}

func (a CheckoutAddress) compose() string {
	return fmt.Sprintf("%s, %s %s", a.Street, a.City, a.Zip)
}

// CardDetails are only checked for presence, never validated further.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
}

// Analytics summarizes all orders for the admin dashboard.
type Analytics struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	CompletedOrders   int     `json:"completed_orders"`
}

// Orders owns the order lifecycle: placement, status changes,
// cancellation, reorder and analytics. Orders are never deleted;
// cancellation is a status. Every mutation rewrites the persisted
// orders record.
type Orders struct {
	mu      sync.Mutex
	records storage.Records
	logger  *zap.Logger
	cart    *Cart
	orders  []models.Order
	notify  func(models.Order)
}

func NewOrders(records storage.Records, cart *Cart, logger *zap.Logger) *Orders {
	s := &Orders{records: records, cart: cart, logger: logger}

	var orders []models.Order
	err := records.Load(context.Background(), storage.KeyOrders, &orders)
	switch {
	case err == nil:
		s.orders = orders
	case errors.Is(err, storage.ErrNotFound):
		// no orders yet
	default:
		logger.Warn("failed to load orders record, starting empty", zap.Error(err))
	}
	return s
}

// SetNotify registers a callback invoked after an order is created or
// its status changes (the websocket feed).
func (s *Orders) SetNotify(fn func(models.Order)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Place converts the current cart into a pending order. The cart snapshot
// is copied by value, totals use the same formulas as the cart summary,
// and the cart is cleared on success.
func (s *Orders) Place(user *models.User, addr CheckoutAddress, method models.PaymentMethod, card CardDetails) (models.Order, error) {
	if user == nil {
		return models.Order{}, models.NewValidationError("please login first")
	}
	if addr.Street == "" || addr.City == "" || addr.Zip == "" {
		return models.Order{}, models.NewValidationError("please fill in all address fields")
	}
	if method == models.PaymentMethodCard &&
		(card.Number == "" || card.Expiry == "" || card.CVV == "") {
		return models.Order{}, models.NewValidationError("please fill in all card details")
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return models.Order{}, models.NewValidationError("cannot place an order with an empty cart")
	}

	totals := pricing.Summarize(items)
	now := time.Now()
	order := models.Order{
		ID:                "ORD-" + uuid.NewString(),
		UserID:            user.ID,
		Items:             items,
		Address:           addr.compose(),
		PaymentMethod:     method,
		Subtotal:          totals.Subtotal,
		DeliveryFee:       totals.DeliveryFee,
		Tax:               totals.Tax,
		Total:             totals.Total,
		Status:            models.OrderStatusPending,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(estimatedDeliveryDelay),
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.persistLocked()
	notify := s.notify
	s.mu.Unlock()

	s.cart.Clear()
	if notify != nil {
		notify(order.Clone())
	}
	return order.Clone(), nil
}

// UpdateStatus is the privileged admin override: it overwrites the status
// with any valid value, deliberately bypassing the cancellation guard.
func (s *Orders) UpdateStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	idx := s.indexLocked(orderID)
	if idx < 0 {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotFound
	}
	s.orders[idx].Status = status
	updated := s.orders[idx].Clone()
	s.persistLocked()
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify(updated.Clone())
	}
	return updated, nil
}

// Cancel sets the order to cancelled unless it is being prepared or is
// already in a terminal state.
func (s *Orders) Cancel(orderID string) (models.Order, error) {
	s.mu.Lock()
	idx := s.indexLocked(orderID)
	if idx < 0 {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotFound
	}

	current := s.orders[idx].Status
	if current == models.OrderStatusPreparing || current.Terminal() {
		s.mu.Unlock()
		return models.Order{}, &models.InvalidTransitionError{OrderID: orderID, From: current}
	}

	s.orders[idx].Status = models.OrderStatusCancelled
	cancelled := s.orders[idx].Clone()
	s.persistLocked()
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify(cancelled.Clone())
	}
	return cancelled, nil
}

// Reorder replaces the cart contents with a copy of the order's item
// snapshot under fresh ids. The original order is untouched.
func (s *Orders) Reorder(orderID string) ([]models.CartItem, error) {
	s.mu.Lock()
	idx := s.indexLocked(orderID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrOrderNotFound
	}
	snapshot := s.orders[idx].Clone().Items
	s.mu.Unlock()

	return s.cart.Restore(snapshot), nil
}

// Get returns the order with the given id.
func (s *Orders) Get(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(orderID)
	if idx < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	return s.orders[idx].Clone(), nil
}

// ForUser returns the user's orders in placement order, most recent last.
func (s *Orders) ForUser(userID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o.Clone())
		}
	}
	return out
}

// All returns every order in placement order.
func (s *Orders) All() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

// ComputeAnalytics aggregates the dashboard figures over all orders.
func (s *Orders) ComputeAnalytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Analytics{TotalOrders: len(s.orders)}
	for _, o := range s.orders {
		a.TotalRevenue += o.Total
		if o.Status == models.OrderStatusDelivered {
			a.CompletedOrders++
		}
	}
	if a.TotalOrders > 0 {
		a.AverageOrderValue = a.TotalRevenue / float64(a.TotalOrders)
	}
	return a
}

func (s *Orders) indexLocked(orderID string) int {
	for i, o := range s.orders {
		if o.ID == orderID {
			return i
		}
	}
	return -1
}

func (s *Orders) persistLocked() {
	if err := s.records.Save(context.Background(), storage.KeyOrders, s.orders); err != nil {
		s.logger.Warn("failed to persist orders", zap.Error(err))
	}
}
