package orderController

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/payments"
	"github.com/nersony/essen-sub001/store"
)

const testWebhookSecret = "whsec_test"

var testUserID = primitive.NewObjectID()

// mockGateway records session requests and returns a canned session.
type mockGateway struct {
	createFunc func(ctx context.Context, req payments.SessionRequest) (*payments.Session, error)
	calls      int
	lastReq    payments.SessionRequest
}

func (g *mockGateway) Provider() string { return "testpay" }

func (g *mockGateway) CreateSession(ctx context.Context, req payments.SessionRequest) (*payments.Session, error) {
	g.calls++
	g.lastReq = req
	if g.createFunc != nil {
		return g.createFunc(ctx, req)
	}
	return &payments.Session{PaymentID: "pay_test_123", PaymentURL: "https://pay.test/s/abc"}, nil
}

// memoryOrderStore applies the same transition guard as the Mongo store so
// handler tests exercise the real reconciliation semantics.
type memoryOrderStore struct {
	mu     sync.Mutex
	orders []*models.Order

	insertErr error
	applyErr  error
}

func (s *memoryOrderStore) Insert(_ context.Context, order *models.Order) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *order
	s.orders = append(s.orders, &cp)
	return nil
}

func (s *memoryOrderStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, store.ErrOrderNotFound
}

func (s *memoryOrderStore) FindByReference(_ context.Context, reference string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ReferenceNumber == reference {
			cp := *o
			return &cp, nil
		}
	}
	return nil, store.ErrOrderNotFound
}

func (s *memoryOrderStore) List(_ context.Context, filter store.OrderFilter, page, limit int64) ([]models.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.UserID != nil && o.UserID != *filter.UserID {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (s *memoryOrderStore) ApplyPaymentStatus(_ context.Context, paymentID, status string) (int64, error) {
	if s.applyErr != nil {
		return 0, s.applyErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.PaymentID != paymentID {
			continue
		}
		for _, allowed := range models.AllowedPriorStatuses(status) {
			if o.Status == allowed {
				o.Status = status
				return 1, nil
			}
		}
		return 0, nil
	}
	return 0, nil
}

func (s *memoryOrderStore) SetStatus(_ context.Context, id primitive.ObjectID, status, trackingNumber, notes string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			o.Status = status
			if trackingNumber != "" {
				o.TrackingNumber = trackingNumber
			}
			if notes != "" {
				o.Notes = notes
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memoryOrderStore) byPaymentID(paymentID string) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.PaymentID == paymentID {
			cp := *o
			return &cp
		}
	}
	return nil
}

var (
	errGatewayDown = errors.New("gateway unreachable")
	errStoreDown   = errors.New("persistence unavailable")
)

// newTestApp wires the handlers against the given fakes. The auth middleware
// is replaced with a stub that injects the test identity.
func newTestApp(orders store.OrderStore, gateway payments.Gateway) *fiber.App {
	Orders = orders
	Gateway = gateway
	WebhookSecret = testWebhookSecret
	RedirectURL = "https://store.test/checkout/complete"
	WebhookURL = "https://api.test/api/payment/webhook"

	app := fiber.New()
	asUser := func(c *fiber.Ctx) error {
		c.Locals("userId", testUserID.Hex())
		c.Locals("role", models.RoleUser)
		return c.Next()
	}
	app.Post("/api/checkout", asUser, Checkout)
	app.Get("/api/orders", asUser, GetOrders)
	app.Get("/api/orders/details", asUser, GetOrderById)
	app.Get("/api/orders/track", TrackOrder)
	app.Post("/api/payment/webhook", PaymentWebhook)
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}
