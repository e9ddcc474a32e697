package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pizzahub/pizzahub-api/models"
	"github.com/pizzahub/pizzahub-api/storage"
)

var (
	testUser = &models.User{ID: "u-1", Name: "alice", Email: "alice@example.com"}

	testAddress = CheckoutAddress{Street: "1 Main St", City: "Springfield", Zip: "12345"}
	testCard    = CardDetails{Number: "4111111111111111", Expiry: "12/29", CVV: "123"}
)

func newTestOrders(t *testing.T) (*Orders, *Cart, *storage.MemoryRecords) {
	t.Helper()
	records := storage.NewMemoryRecords()
	cart := NewCart(records, zap.NewNop())
	return NewOrders(records, cart, zap.NewNop()), cart, records
}

func fillCart(t *testing.T, cart *Cart, count int) {
	t.Helper()
	catalog := NewCatalog()
	for i := 1; i <= count; i++ {
		pizza, ok := catalog.Pizza(i)
		require.True(t, ok)
		_, err := cart.AddItem(pizza, models.SizeMedium, models.CrustHandTossed, nil, 1)
		require.NoError(t, err)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    *models.User
		addr    CheckoutAddress
		method  models.PaymentMethod
		card    CardDetails
		prepare func(t *testing.T, cart *Cart)
	}{
		{
			name: "no user", user: nil, addr: testAddress,
			method: models.PaymentMethodCash,
			prepare: func(t *testing.T, cart *Cart) { fillCart(t, cart, 1) },
		},
		{
			name: "missing city", user: testUser,
			addr:   CheckoutAddress{Street: "1 Main St", Zip: "12345"},
			method: models.PaymentMethodCash,
			prepare: func(t *testing.T, cart *Cart) { fillCart(t, cart, 1) },
		},
		{
			name: "card without cvv", user: testUser, addr: testAddress,
			method: models.PaymentMethodCard,
			card:   CardDetails{Number: "4111111111111111", Expiry: "12/29"},
			prepare: func(t *testing.T, cart *Cart) { fillCart(t, cart, 1) },
		},
		{
			name: "empty cart", user: testUser, addr: testAddress,
			method:  models.PaymentMethodCash,
			prepare: func(t *testing.T, cart *Cart) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, cart, _ := newTestOrders(t)
			tt.prepare(t, cart)

			_, err := orders.Place(tt.user, tt.addr, tt.method, tt.card)
			var verr *models.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Empty(t, orders.All())
		})
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	orders, cart, _ := newTestOrders(t)
	fillCart(t, cart, 2)

	order, err := orders.Place(testUser, testAddress, models.PaymentMethodCard, testCard)
	require.NoError(t, err)

	assert.True(t, len(order.ID) > 4 && order.ID[:4] == "ORD-")
	assert.Equal(t, testUser.ID, order.UserID)
	assert.Equal(t, "1 Main St, Springfield 12345", order.Address)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, order.Subtotal+order.DeliveryFee+order.Tax, order.Total, 1e-9)
	assert.WithinDuration(t, order.CreatedAt.Add(30*time.Minute), order.EstimatedDelivery, time.Second)

	// cart cleared on success
	assert.Empty(t, cart.Items())
}

func TestPlaceOrderSnapshotIsIndependent(t *testing.T) {
	orders, cart, _ := newTestOrders(t)
	catalog := NewCatalog()
	pizza, _ := catalog.Pizza(1)
	_, err := cart.AddItem(pizza, models.SizeLarge, models.CrustPan,
		catalog.ToppingSelections([]int{1, 6}), 2)
	require.NoError(t, err)

	order, err := orders.Place(testUser, testAddress, models.PaymentMethodCash, CardDetails{})
	require.NoError(t, err)
	wantName := order.Items[0].Name
	wantToppings := len(order.Items[0].Toppings)

	// mutate the live cart afterwards
	fillCart(t, cart, 3)
	cart.Clear()

	got, err := orders.Get(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, wantName, got.Items[0].Name)
	assert.Len(t, got.Items[0].Toppings, wantToppings)
}

func TestCancelMatrix(t *testing.T) {
	tests := []struct {
		from    models.OrderStatus
		wantErr bool
	}{
		{models.OrderStatusPending, false},
		{models.OrderStatusConfirmed, false},
		{models.OrderStatusOutForDelivery, false},
		{models.OrderStatusPreparing, true},
		{models.OrderStatusDelivered, true},
		{models.OrderStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			orders, cart, _ := newTestOrders(t)
			fillCart(t, cart, 1)
			order, err := orders.Place(testUser, testAddress, models.PaymentMethodCash, CardDetails{})
			require.NoError(t, err)

			_, err = orders.UpdateStatus(order.ID, tt.from)
			require.NoError(t, err)

			cancelled, err := orders.Cancel(order.ID)
			if tt.wantErr {
				var terr *models.InvalidTransitionError
				assert.ErrorAs(t, err, &terr)
				got, _ := orders.Get(order.ID)
				assert.Equal(t, tt.from, got.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
			}
		})
	}
}

func TestUpdateStatusIsPrivilegedOverride(t *testing.T) {
	orders, cart, _ := newTestOrders(t)
	fillCart(t, cart, 1)
	order, err := orders.Place(testUser, testAddress, models.PaymentMethodCash, CardDetails{})
	require.NoError(t, err)

	// the admin path skips transition guards entirely
	updated, err := orders.UpdateStatus(order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)

	updated, err = orders.UpdateStatus(order.ID, models.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, updated.Status)

	_, err = orders.UpdateStatus("ORD-missing", models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestReorderCopiesSnapshotWithFreshIDs(t *testing.T) {
	orders, cart, _ := newTestOrders(t)
	fillCart(t, cart, 3)
	order, err := orders.Place(testUser, testAddress, models.PaymentMethodCash, CardDetails{})
	require.NoError(t, err)
	require.Empty(t, cart.Items())

	restored, err := orders.Reorder(order.ID)
	require.NoError(t, err)
	require.Len(t, restored, 3)

	originalIDs := make(map[string]bool)
	for _, item := range order.Items {
		originalIDs[item.ID] = true
	}
	for i, item := range restored {
		assert.False(t, originalIDs[item.ID], "reordered item must get a fresh id")
		assert.Equal(t, order.Items[i].Name, item.Name)
		assert.Equal(t, order.Items[i].Size, item.Size)
		assert.Equal(t, order.Items[i].Crust, item.Crust)
		assert.InDelta(t, order.Items[i].TotalPrice, item.TotalPrice, 1e-9)
	}
	assert.Len(t, cart.Items(), 3)

	// the original order is untouched
	got, err := orders.Get(order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 3)
}

func TestReorderReplacesCartContents(t *testing.T) {
	orders, cart, _ := newTestOrders(t)
	catalog := NewCatalog()
	fillCart(t, cart, 3)
	order, err := orders.Place(testUser, testAddress, models.PaymentMethodCash, CardDetails{})
	require.NoError(t, err)

	// the cart is not empty when the reorder happens
	hawaiian, _ := catalog.Pizza(7)
	extra, err := cart.AddItem(hawaiian, models.SizeLarge, models.CrustStuffed, nil, 1)
	require.NoError(t, err)

	restored, err := orders.Reorder(order.ID)
	require.NoError(t, err)
	require.Len(t, restored, 3)

	items := cart.Items()
	require.Len(t, items, 3, "reorder replaces the cart, it does not append")
	for i, item := range items {
		assert.Equal(t, order.Items[i].Name, item.Name)
		assert.NotEqual(t, extra.ID, item.ID)
	}
}

func TestOrdersForUserPreservesOrder(t *testing.T) {
	orders, cart, _ := newTestOrders(t)

	var placed []string
	for i := 0; i < 3; i++ {
		fillCart(t, cart, 1)
		order, err := orders.Place(testUser, testAddress, models.PaymentMethodCash, CardDetails{})
		require.NoError(t, err)
		placed = append(placed, order.ID)
	}

	mine := orders.ForUser(testUser.ID)
	require.Len(t, mine, 3)
	for i, o := range mine {
		assert.Equal(t, placed[i], o.ID)
	}

	assert.Empty(t, orders.ForUser("someone-else"))
}

func TestComputeAnalytics(t *testing.T) {
	orders, cart, _ := newTestOrders(t)

	empty := orders.ComputeAnalytics()
	assert.Zero(t, empty.TotalOrders)
	assert.Zero(t, empty.AverageOrderValue)

	var revenue float64
	var ids []string
	for i := 0; i < 3; i++ {
		fillCart(t, cart, i+1)
		order, err := orders.Place(testUser, testAddress, models.PaymentMethodCash, CardDetails{})
		require.NoError(t, err)
		revenue += order.Total
		ids = append(ids, order.ID)
	}
	_, err := orders.UpdateStatus(ids[0], models.OrderStatusDelivered)
	require.NoError(t, err)

	a := orders.ComputeAnalytics()
	assert.Equal(t, 3, a.TotalOrders)
	assert.InDelta(t, revenue, a.TotalRevenue, 1e-9)
	assert.InDelta(t, revenue/3, a.AverageOrderValue, 1e-9)
	assert.Equal(t, 1, a.CompletedOrders)
}

func TestOrdersPersistAcrossRestart(t *testing.T) {
	records := storage.NewMemoryRecords()
	cart := NewCart(records, zap.NewNop())
	orders := NewOrders(records, cart, zap.NewNop())

	fillCart(t, cart, 1)
	order, err := orders.Place(testUser, testAddress, models.PaymentMethodCash, CardDetails{})
	require.NoError(t, err)

	reloaded := NewOrders(records, NewCart(records, zap.NewNop()), zap.NewNop())
	got, err := reloaded.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func TestNotifyFiresOnLifecycleEvents(t *testing.T) {
	orders, cart, _ := newTestOrders(t)

	var events []models.OrderStatus
	orders.SetNotify(func(o models.Order) {
		events = append(events, o.Status)
	})

	fillCart(t, cart, 1)
	order, err := orders.Place(testUser, testAddress, models.PaymentMethodCash, CardDetails{})
	require.NoError(t, err)
	_, err = orders.UpdateStatus(order.ID, models.OrderStatusConfirmed)
	require.NoError(t, err)
	_, err = orders.Cancel(order.ID)
	require.NoError(t, err)

	assert.Equal(t, []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusCancelled,
	}, events)
}
