package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pizzahub/pizzahub-api/models"
	"github.com/pizzahub/pizzahub-api/storage"
	"github.com/pizzahub/pizzahub-api/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Orders, *store.Cart, *store.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	records := storage.NewMemoryRecords()
	cart := store.NewCart(records, zap.NewNop())
	orders := store.NewOrders(records, cart, zap.NewNop())
	session := store.NewSession(records, cart, zap.NewNop())

	r := gin.New()
	r.POST("/orders/place", PlaceOrderHandler(orders, session))
	r.POST("/orders/:orderID/cancel", CancelOrderHandler(orders))
	return r, orders, cart, session
}

func placeBody() []byte {
	body, _ := json.Marshal(PlaceOrderInput{
		Street:        "1 Main St",
		City:          "Springfield",
		Zip:           "12345",
		PaymentMethod: "cash",
	})
	return body
}

func TestPlaceOrderHandler(t *testing.T) {
	r, _, cart, session := newTestRouter(t)

	_, err := session.Login("a@b.com", "x")
	require.NoError(t, err)
	catalog := store.NewCatalog()
	pizza, _ := catalog.Pizza(1)
	_, err = cart.AddItem(pizza, models.SizeMedium, models.CrustHandTossed, nil, 2)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/place", bytes.NewReader(placeBody()))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 25.247, order.Total, 1e-6)
	assert.Empty(t, cart.Items())
}

func TestPlaceOrderHandlerRequiresLogin(t *testing.T) {
	r, _, cart, _ := newTestRouter(t)
	catalog := store.NewCatalog()
	pizza, _ := catalog.Pizza(1)
	_, err := cart.AddItem(pizza, models.SizeMedium, models.CrustThin, nil, 1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/place", bytes.NewReader(placeBody()))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "please login first")
}

func TestCancelOrderHandlerConflict(t *testing.T) {
	r, orders, cart, session := newTestRouter(t)

	_, err := session.Login("a@b.com", "x")
	require.NoError(t, err)
	catalog := store.NewCatalog()
	pizza, _ := catalog.Pizza(2)
	_, err = cart.AddItem(pizza, models.SizeMedium, models.CrustThin, nil, 1)
	require.NoError(t, err)

	order, err := orders.Place(session.Current(),
		store.CheckoutAddress{Street: "1 Main St", City: "Springfield", Zip: "12345"},
		models.PaymentMethodCash, store.CardDetails{})
	require.NoError(t, err)
	_, err = orders.UpdateStatus(order.ID, models.OrderStatusPreparing)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+order.ID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/orders/ORD-missing/cancel", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
