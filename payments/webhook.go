package payments

import (
	"encoding/json"
	"errors"
	"net/url"
)

// WebhookEvent is the payload of a gateway status callback. The gateway's
// callback encoding is not contractually fixed, so deliveries arrive as
// either JSON or URL-encoded form data.
type WebhookEvent struct {
	PaymentID        string `json:"payment_id"`
	PaymentRequestID string `json:"payment_request_id"`
	ReferenceNumber  string `json:"reference_number"`
	Status           string `json:"status"`
}

var ErrUnrecognizedPayload = errors.New("webhook payload is neither JSON nor form data")

// ParseWebhookEvent decodes a raw webhook body, trying JSON first and
// falling back to URL-encoded form data.
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var ev WebhookEvent
	if err := json.Unmarshal(body, &ev); err == nil {
		return &ev, nil
	}

	vals, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, ErrUnrecognizedPayload
	}
	ev = WebhookEvent{
		PaymentID:        vals.Get("payment_id"),
		PaymentRequestID: vals.Get("payment_request_id"),
		ReferenceNumber:  vals.Get("reference_number"),
		Status:           vals.Get("status"),
	}
	// ParseQuery accepts almost any string, so an empty decode means the
	// body was not really form data either.
	if ev.PaymentID == "" && ev.PaymentRequestID == "" && ev.Status == "" {
		return nil, ErrUnrecognizedPayload
	}
	return &ev, nil
}

// PaymentRef returns the identifier used to correlate the callback to an
// order, preferring payment_id over payment_request_id.
func (e *WebhookEvent) PaymentRef() string {
	if e.PaymentID != "" {
		return e.PaymentID
	}
	return e.PaymentRequestID
}
