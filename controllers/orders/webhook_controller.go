package orderController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/payments"
	"github.com/nersony/essen-sub001/responses"
)

// PaymentWebhook reconciles an asynchronous gateway callback with the local
// order record. The route is unauthenticated; authenticity rests entirely on
// the shared-secret signature over the raw body.
//
// Once the signature validates, the handler acknowledges with 200 even when
// the local update fails: the gateway treats any non-success response as
// "retry this delivery", and a retry cannot fix an order that does not exist
// here. Such failures are logged instead.
func PaymentWebhook(c *fiber.Ctx) error {
	body := c.Body()

	signature := c.Get(payments.SignatureHeader)
	if !payments.VerifySignature(body, signature, WebhookSecret) {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.AppResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid webhook signature",
		})
	}

	event, err := payments.ParseWebhookEvent(body)
	if err != nil {
		Log.Error("authenticated webhook with unparseable body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unrecognized webhook payload",
		})
	}

	paymentRef := event.PaymentRef()
	status := models.StatusFromVendor(event.Status)

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	matched, err := Orders.ApplyPaymentStatus(ctx, paymentRef, status)
	if err != nil {
		Log.Error("order update failed for webhook",
			"paymentId", paymentRef, "vendorStatus", event.Status, "status", status, "error", err)
	} else if matched == 0 {
		Log.Warn("webhook matched no updatable order",
			"paymentId", paymentRef, "reference", event.ReferenceNumber,
			"vendorStatus", event.Status, "status", status)
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Webhook processed",
	})
}
