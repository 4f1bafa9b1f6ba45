package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Orders move forward through these; the webhook path only
// ever writes OrderStatusPaid, OrderStatusCancelled, OrderStatusRefunded or
// OrderStatusPending.
const (
	OrderStatusPending          = "pending"
	OrderStatusPaymentInitiated = "payment_initiated"
	OrderStatusPaid             = "paid"
	OrderStatusProcessing       = "processing"
	OrderStatusShipped          = "shipped"
	OrderStatusDelivered        = "delivered"
	OrderStatusCancelled        = "cancelled"
	OrderStatusRefunded         = "refunded"
)

// OrderItem is a snapshot of a product at purchase time. Denormalized on
// purpose: historic orders must not change when the catalog does.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Image     string             `json:"image" bson:"image"`
}

type ShippingAddress struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
	Country string `json:"country" bson:"country"`
}

type Customer struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone,omitempty"`
}

// Order represents one checkout attempt and its lifecycle.
type Order struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId,omitempty"`
	ReferenceNumber string             `json:"referenceNumber" bson:"referenceNumber"`
	Customer        Customer           `json:"customer" bson:"customer"`
	Items           []OrderItem        `json:"items" bson:"items"`
	ShippingAddress ShippingAddress    `json:"shippingAddress" bson:"shippingAddress"`
	Subtotal        float64            `json:"subtotal" bson:"subtotal"`
	Shipping        float64            `json:"shipping" bson:"shipping"`
	Tax             float64            `json:"tax" bson:"tax"`
	Total           float64            `json:"total" bson:"total"`
	Status          string             `json:"status" bson:"status"`
	PaymentID       string             `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	PaymentProvider string             `json:"paymentProvider,omitempty" bson:"paymentProvider,omitempty"`
	TrackingNumber  string             `json:"trackingNumber,omitempty" bson:"trackingNumber,omitempty"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// StatusFromVendor maps the gateway's payment status vocabulary to ours.
// Anything unrecognized maps to pending so a new vendor status never marks
// an order paid by accident.
func StatusFromVendor(vendorStatus string) string {
	switch vendorStatus {
	case "completed":
		return OrderStatusPaid
	case "failed", "expired":
		return OrderStatusCancelled
	case "refunded":
		return OrderStatusRefunded
	default:
		return OrderStatusPending
	}
}

// AllowedPriorStatuses lists the statuses a webhook-driven transition to
// `to` may be applied on top of. Including `to` itself keeps duplicate
// deliveries idempotent; excluding later statuses keeps a stale or
// out-of-order callback from regressing an order.
func AllowedPriorStatuses(to string) []string {
	switch to {
	case OrderStatusPaid:
		return []string{OrderStatusPending, OrderStatusPaymentInitiated, OrderStatusPaid}
	case OrderStatusCancelled:
		return []string{OrderStatusPending, OrderStatusPaymentInitiated, OrderStatusCancelled}
	case OrderStatusRefunded:
		return []string{
			OrderStatusPaid, OrderStatusProcessing, OrderStatusShipped,
			OrderStatusDelivered, OrderStatusRefunded,
		}
	default:
		return []string{OrderStatusPending, OrderStatusPaymentInitiated}
	}
}

// IsValidStatus reports whether s is one of the known order statuses.
// Used by the admin status-update path; the webhook path never sees
// free-form status values.
func IsValidStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaymentInitiated, OrderStatusPaid,
		OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered,
		OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Shipping and tax policy. Flat-rate delivery, free above the threshold.
const (
	FreeShippingThreshold = 500.0
	FlatShippingRate      = 49.0
	TaxRate               = 0.08
)

// ComputeTotals derives the order's monetary fields from its line items.
func ComputeTotals(items []OrderItem) (subtotal, shipping, tax, total float64) {
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	subtotal = roundCents(subtotal)

	if subtotal > 0 && subtotal < FreeShippingThreshold {
		shipping = FlatShippingRate
	}

	tax = roundCents(subtotal * TaxRate)
	total = roundCents(subtotal + shipping + tax)
	return subtotal, shipping, tax, total
}

func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
