package orderController

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/payments"
	"github.com/nersony/essen-sub001/responses"
	"github.com/nersony/essen-sub001/store"
)

// Package dependencies, wired in main. Tests swap in fakes.
var (
	Orders        store.OrderStore
	Gateway       payments.Gateway
	WebhookSecret string
	RedirectURL   string
	WebhookURL    string
	Log           *slog.Logger = slog.Default()
)

// CheckoutItem is one cart line as submitted by the storefront.
type CheckoutItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// CheckoutRequest is the checkout submission payload.
type CheckoutRequest struct {
	Items           []CheckoutItem         `json:"items"`
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	Currency        string                 `json:"currency"`
}

// Checkout validates the submission, opens a hosted payment session at the
// gateway and persists the order in payment_initiated status. All input
// validation happens before the gateway is called or anything is persisted.
func Checkout(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.AppResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No items to check out",
		})
	}
	if req.CustomerName == "" || req.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Customer name and email are required",
		})
	}
	addr := req.ShippingAddress
	if addr.Street == "" || addr.City == "" || addr.ZipCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Shipping address is incomplete",
		})
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 || it.Price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid item quantity or price",
			})
		}
		productID, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid product ID format",
			})
		}
		items = append(items, models.OrderItem{
			ProductID: productID,
			Name:      it.Name,
			Slug:      it.Slug,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	subtotal, shipping, tax, total := models.ComputeTotals(items)
	reference := payments.NewReferenceNumber()

	session, err := Gateway.CreateSession(ctx, payments.SessionRequest{
		Amount:          total,
		Currency:        req.Currency,
		Purpose:         "Essen order " + reference,
		ReferenceNumber: reference,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		RedirectURL:     RedirectURL + "?reference=" + reference,
		WebhookURL:      WebhookURL,
	})
	if err != nil {
		Log.Error("payment session creation failed", "reference", reference, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create payment session",
		})
	}

	now := time.Now()
	order := models.Order{
		ID:              primitive.NewObjectID(),
		UserID:          userObjectID,
		ReferenceNumber: reference,
		Customer: models.Customer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		Items:           items,
		ShippingAddress: addr,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           total,
		Status:          models.OrderStatusPaymentInitiated,
		PaymentID:       session.PaymentID,
		PaymentProvider: Gateway.Provider(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := Orders.Insert(ctx, &order); err != nil {
		Log.Error("order persistence failed after gateway session",
			"reference", reference, "paymentId", session.PaymentID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Checkout initiated",
		Result: &fiber.Map{
			"orderId":         order.ID.Hex(),
			"referenceNumber": reference,
			"paymentUrl":      session.PaymentURL,
			"total":           total,
		},
	})
}
