package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader carries the gateway's HMAC signature on webhook deliveries.
const SignatureHeader = "X-Razorpay-Signature"

// ComputeSignature returns the hex HMAC-SHA256 of body under secret.
func ComputeSignature(body []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature checks a webhook signature in constant time.
func VerifySignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	expected := ComputeSignature(body, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
