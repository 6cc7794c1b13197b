package payments

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/evanshaw/cadence_backend/config"
)

var ErrDisabled = errors.New("payments are disabled")

// Client wraps Stripe Checkout for invoice payment links plus webhook
// signature verification.
type Client struct {
	cfg config.StripeConfig
}

func New(cfg config.StripeConfig) *Client {
	if cfg.Enabled {
		stripe.Key = cfg.SecretKey
	}
	return &Client{cfg: cfg}
}

// CheckoutRequest describes a single-invoice payment.
type CheckoutRequest struct {
	InvoiceID   string
	Description string
	AmountCents int64
	Currency    string
	ClientEmail string
}

// CreateCheckout creates a Stripe Checkout session for an invoice and
// returns its hosted payment URL.
func (c *Client) CreateCheckout(req CheckoutRequest) (string, error) {
	if !c.cfg.Enabled {
		return "", ErrDisabled
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(req.AmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.Description),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		ClientReferenceID: stripe.String(req.InvoiceID),
		CustomerEmail:     stripe.String(req.ClientEmail),
		SuccessURL:        stripe.String(c.cfg.SuccessURL),
		CancelURL:         stripe.String(c.cfg.CancelURL),
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout: %w", err)
	}
	return s.URL, nil
}

// PaymentEvent is the subset of a completed-checkout webhook event the
// billing service cares about.
type PaymentEvent struct {
	InvoiceID   string
	AmountCents int64
	Currency    string
	PaymentRef  string
}

// VerifyWebhook validates the Stripe signature and extracts a PaymentEvent
// from checkout.session.completed events. Other event types return
// (nil, nil): acknowledged but ignored.
func (c *Client) VerifyWebhook(payload []byte, sigHeader string) (*PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.cfg.WebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("stripe webhook: %w", err)
	}

	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("stripe webhook payload: %w", err)
	}

	return &PaymentEvent{
		InvoiceID:   sess.ClientReferenceID,
		AmountCents: sess.AmountTotal,
		Currency:    string(sess.Currency),
		PaymentRef:  sess.ID,
	}, nil
}
