package payments

import "context"

// Session is a hosted checkout session created at the gateway.
type Session struct {
	// PaymentID is the gateway's opaque identifier. It comes back in the
	// webhook payload and is our correlation key for reconciliation.
	PaymentID string
	// PaymentURL is the hosted payment page the customer is sent to.
	PaymentURL string
}

// SessionRequest carries everything the gateway needs to open a session.
type SessionRequest struct {
	Amount          float64
	Currency        string
	Purpose         string
	ReferenceNumber string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	RedirectURL     string
	WebhookURL      string
}

// Gateway creates hosted payment sessions with the payment provider.
type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
	Provider() string
}
