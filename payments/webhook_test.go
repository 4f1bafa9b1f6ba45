package payments

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookEvent_JSON(t *testing.T) {
	body := []byte(`{"payment_id":"pay_123","payment_request_id":"req_456","reference_number":"ORDER-AB12CD34","status":"completed"}`)

	ev, err := ParseWebhookEvent(body)
	require.NoError(t, err)
	assert.Equal(t, "pay_123", ev.PaymentID)
	assert.Equal(t, "req_456", ev.PaymentRequestID)
	assert.Equal(t, "ORDER-AB12CD34", ev.ReferenceNumber)
	assert.Equal(t, "completed", ev.Status)
}

func TestParseWebhookEvent_FormFallback(t *testing.T) {
	body := []byte("payment_id=pay_123&reference_number=ORDER-AB12CD34&status=refunded")

	ev, err := ParseWebhookEvent(body)
	require.NoError(t, err)
	assert.Equal(t, "pay_123", ev.PaymentID)
	assert.Equal(t, "ORDER-AB12CD34", ev.ReferenceNumber)
	assert.Equal(t, "refunded", ev.Status)
}

func TestParseWebhookEvent_UnrecognizedBody(t *testing.T) {
	_, err := ParseWebhookEvent([]byte("not json, not a form"))
	assert.ErrorIs(t, err, ErrUnrecognizedPayload)
}

func TestPaymentRef_PrefersPaymentID(t *testing.T) {
	ev := &WebhookEvent{PaymentID: "pay_123", PaymentRequestID: "req_456"}
	assert.Equal(t, "pay_123", ev.PaymentRef())

	ev = &WebhookEvent{PaymentRequestID: "req_456"}
	assert.Equal(t, "req_456", ev.PaymentRef())
}

func TestNewReferenceNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ORDER-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := NewReferenceNumber()
		assert.Regexp(t, pattern, ref)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
