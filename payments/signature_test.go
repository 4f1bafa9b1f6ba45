package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature_ValidSignature(t *testing.T) {
	body := []byte(`{"payment_id":"pay_123","status":"completed"}`)
	secret := "whsec_test"

	sig := ComputeSignature(body, secret)
	assert.True(t, VerifySignature(body, sig, secret))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	body := []byte(`{"payment_id":"pay_123","status":"completed"}`)

	sig := ComputeSignature(body, "whsec_test")
	assert.False(t, VerifySignature(body, sig, "whsec_other"))
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	secret := "whsec_test"
	sig := ComputeSignature([]byte(`{"status":"completed"}`), secret)

	assert.False(t, VerifySignature([]byte(`{"status":"refunded"}`), sig, secret))
}

func TestVerifySignature_EmptySignatureOrSecret(t *testing.T) {
	body := []byte("payload")

	assert.False(t, VerifySignature(body, "", "whsec_test"))
	assert.False(t, VerifySignature(body, ComputeSignature(body, ""), ""))
}
