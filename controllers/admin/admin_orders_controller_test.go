package adminController

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
	"github.com/nersony/essen-sub001/store"
)

var testAdminID = primitive.NewObjectID()

// fakeOrderStore implements store.OrderStore with func fields; unset methods
// return zero values.
type fakeOrderStore struct {
	listFunc      func(ctx context.Context, filter store.OrderFilter, page, limit int64) ([]models.Order, int64, error)
	setStatusFunc func(ctx context.Context, id primitive.ObjectID, status, trackingNumber, notes string) (int64, error)
	lastFilter    *store.OrderFilter
}

func (f *fakeOrderStore) Insert(context.Context, *models.Order) error { return nil }
func (f *fakeOrderStore) FindByID(context.Context, primitive.ObjectID) (*models.Order, error) {
	return nil, store.ErrOrderNotFound
}
func (f *fakeOrderStore) FindByReference(context.Context, string) (*models.Order, error) {
	return nil, store.ErrOrderNotFound
}
func (f *fakeOrderStore) ApplyPaymentStatus(context.Context, string, string) (int64, error) {
	return 0, nil
}

func (f *fakeOrderStore) List(ctx context.Context, filter store.OrderFilter, page, limit int64) ([]models.Order, int64, error) {
	f.lastFilter = &filter
	if f.listFunc != nil {
		return f.listFunc(ctx, filter, page, limit)
	}
	return nil, 0, nil
}

func (f *fakeOrderStore) SetStatus(ctx context.Context, id primitive.ObjectID, status, trackingNumber, notes string) (int64, error) {
	if f.setStatusFunc != nil {
		return f.setStatusFunc(ctx, id, status, trackingNumber, notes)
	}
	return 1, nil
}

type fakeActivityStore struct {
	recorded []models.Activity
}

func (f *fakeActivityStore) Record(_ context.Context, a models.Activity) error {
	f.recorded = append(f.recorded, a)
	return nil
}

func (f *fakeActivityStore) List(context.Context, int64, int64) ([]models.Activity, int64, error) {
	return f.recorded, int64(len(f.recorded)), nil
}

func newAdminApp(orders store.OrderStore, activities store.ActivityStore) *fiber.App {
	Orders = orders
	Activities = activities

	app := fiber.New()
	asAdmin := func(c *fiber.Ctx) error {
		c.Locals("userId", testAdminID.Hex())
		c.Locals("role", models.RoleAdmin)
		return c.Next()
	}
	app.Get("/api/admin/orders", asAdmin, ListOrders)
	app.Put("/api/admin/orders/status", asAdmin, UpdateOrderStatus)
	app.Get("/api/admin/activities", asAdmin, ListActivities)
	return app
}

func TestListOrders_DateFilterValidation(t *testing.T) {
	orders := &fakeOrderStore{}
	app := newAdminApp(orders, &fakeActivityStore{})

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"bad from date", "?from=13-2025-01", http.StatusBadRequest},
		{"bad to date", "?to=tomorrow", http.StatusBadRequest},
		{"inverted range", "?from=2025-06-01&to=2025-01-01", http.StatusBadRequest},
		{"unknown status", "?status=misplaced", http.StatusBadRequest},
		{"valid range", "?from=2025-01-01&to=2025-06-01&status=paid", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/orders"+tc.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}

	// the valid request must have reached the store with parsed bounds
	require.NotNil(t, orders.lastFilter)
	assert.Equal(t, models.OrderStatusPaid, orders.lastFilter.Status)
	require.NotNil(t, orders.lastFilter.From)
	require.NotNil(t, orders.lastFilter.To)
	assert.True(t, orders.lastFilter.To.After(*orders.lastFilter.From))
}

func TestUpdateOrderStatus(t *testing.T) {
	orders := &fakeOrderStore{}
	activities := &fakeActivityStore{}
	app := newAdminApp(orders, activities)

	orderID := primitive.NewObjectID().Hex()
	payload, _ := json.Marshal(UpdateOrderStatusRequest{
		OrderID:        orderID,
		Status:         models.OrderStatusShipped,
		TrackingNumber: "SGDEX-991",
		Notes:          "left warehouse",
	})

	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, activities.recorded, 1)
	assert.Equal(t, "order.status_updated", activities.recorded[0].Action)
	assert.Equal(t, orderID, activities.recorded[0].TargetID)
	assert.Equal(t, testAdminID, activities.recorded[0].ActorID)
}

func TestUpdateOrderStatus_Invalid(t *testing.T) {
	orders := &fakeOrderStore{
		setStatusFunc: func(context.Context, primitive.ObjectID, string, string, string) (int64, error) {
			return 0, nil
		},
	}
	activities := &fakeActivityStore{}
	app := newAdminApp(orders, activities)

	// unknown status value
	payload, _ := json.Marshal(UpdateOrderStatusRequest{
		OrderID: primitive.NewObjectID().Hex(),
		Status:  "teleported",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// valid status, order missing: surfaced here, unlike the webhook path
	payload, _ = json.Marshal(UpdateOrderStatusRequest{
		OrderID: primitive.NewObjectID().Hex(),
		Status:  models.OrderStatusShipped,
	})
	req = httptest.NewRequest(http.MethodPut, "/api/admin/orders/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Empty(t, activities.recorded, "failed updates must not be audit-logged")
}
