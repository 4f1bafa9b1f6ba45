package orderController

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/payments"
)

func validCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		Items: []CheckoutItem{
			{
				ProductID: primitive.NewObjectID().Hex(),
				Name:      "Oslo Oak Coffee Table",
				Slug:      "oslo-oak-coffee-table",
				Price:     100,
				Quantity:  1,
				Image:     "https://cdn.test/oslo.jpg",
			},
			{
				ProductID: primitive.NewObjectID().Hex(),
				Name:      "Luna Side Chair",
				Slug:      "luna-side-chair",
				Price:     25,
				Quantity:  2,
				Image:     "https://cdn.test/luna.jpg",
			},
		},
		CustomerName:  "Maya Tan",
		CustomerEmail: "maya@example.com",
		CustomerPhone: "+6598765432",
		ShippingAddress: models.ShippingAddress{
			Street:  "12 Teak Lane",
			City:    "Singapore",
			State:   "SG",
			ZipCode: "049123",
			Country: "SG",
		},
	}
}

func postCheckout(t *testing.T, app *fiber.App, payload CheckoutRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func TestCheckout_RejectsBeforeGatewayCall(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CheckoutRequest)
	}{
		{"no items", func(r *CheckoutRequest) { r.Items = nil }},
		{"no email", func(r *CheckoutRequest) { r.CustomerEmail = "" }},
		{"no name", func(r *CheckoutRequest) { r.CustomerName = "" }},
		{"no address", func(r *CheckoutRequest) { r.ShippingAddress = models.ShippingAddress{} }},
		{"zero quantity", func(r *CheckoutRequest) { r.Items[0].Quantity = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := &memoryOrderStore{}
			gateway := &mockGateway{}
			app := newTestApp(orders, gateway)

			payload := validCheckoutRequest()
			tc.mutate(&payload)

			resp := postCheckout(t, app, payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, 0, gateway.calls, "gateway must not be called on invalid input")
			assert.Empty(t, orders.orders, "nothing may be persisted on invalid input")
		})
	}
}

func TestCheckout_Success(t *testing.T) {
	orders := &memoryOrderStore{}
	gateway := &mockGateway{}
	app := newTestApp(orders, gateway)

	resp := postCheckout(t, app, validCheckoutRequest())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	result := envelope["result"].(map[string]interface{})
	assert.Regexp(t, `^ORDER-[0-9A-F]{8}$`, result["referenceNumber"])
	assert.Equal(t, "https://pay.test/s/abc", result["paymentUrl"])

	require.Len(t, orders.orders, 1)
	order := orders.orders[0]
	assert.Equal(t, models.OrderStatusPaymentInitiated, order.Status)
	assert.Equal(t, "pay_test_123", order.PaymentID)
	assert.Equal(t, "testpay", order.PaymentProvider)
	assert.Equal(t, 150.0, order.Subtotal)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, testUserID, order.UserID)

	// The reference number must be embedded in what the gateway saw.
	assert.Equal(t, 1, gateway.calls)
	assert.Contains(t, gateway.lastReq.Purpose, result["referenceNumber"])
	assert.Equal(t, order.Total, gateway.lastReq.Amount)
	assert.Equal(t, "https://api.test/api/payment/webhook", gateway.lastReq.WebhookURL)
}

func TestCheckout_GatewayFailure(t *testing.T) {
	orders := &memoryOrderStore{}
	gateway := &mockGateway{
		createFunc: func(context.Context, payments.SessionRequest) (*payments.Session, error) {
			return nil, errGatewayDown
		},
	}
	app := newTestApp(orders, gateway)

	resp := postCheckout(t, app, validCheckoutRequest())
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, orders.orders, "no order may be persisted when the gateway fails")
}

func TestCheckout_PersistenceFailure(t *testing.T) {
	orders := &memoryOrderStore{insertErr: errStoreDown}
	gateway := &mockGateway{}
	app := newTestApp(orders, gateway)

	resp := postCheckout(t, app, validCheckoutRequest())
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
