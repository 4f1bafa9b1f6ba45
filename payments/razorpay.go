package payments

import (
	"context"
	"errors"

	"github.com/razorpay/razorpay-go"
)

// RazorpayGateway creates Razorpay payment links as hosted checkout sessions.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) Provider() string { return "razorpay" }

func (g *RazorpayGateway) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	data := map[string]interface{}{
		// smallest currency unit
		"amount":          int64(req.Amount*100 + 0.5),
		"currency":        currency,
		"description":     req.Purpose,
		"reference_id":    req.ReferenceNumber,
		"callback_url":    req.RedirectURL,
		"callback_method": "get",
		"customer": map[string]interface{}{
			"name":    req.CustomerName,
			"email":   req.CustomerEmail,
			"contact": req.CustomerPhone,
		},
		"notes": map[string]interface{}{
			"reference_number": req.ReferenceNumber,
			"webhook_url":      req.WebhookURL,
		},
	}

	// The razorpay client has no context support, so the call runs in a
	// goroutine and the caller's deadline is honored here.
	type linkResult struct {
		link map[string]interface{}
		err  error
	}
	ch := make(chan linkResult, 1)
	go func() {
		link, err := g.client.PaymentLink.Create(data, nil)
		ch <- linkResult{link: link, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return nil, r.err
		}
		id, _ := r.link["id"].(string)
		url, _ := r.link["short_url"].(string)
		if id == "" || url == "" {
			return nil, errors.New("payment link response missing id or short_url")
		}
		return &Session{PaymentID: id, PaymentURL: url}, nil
	}
}
