package payments

import (
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/evanshaw/cadence_backend/config"
)

const testWebhookSecret = "whsec_test_secret"

func testClient() *Client {
	return New(config.StripeConfig{
		Enabled:       true,
		SecretKey:     "sk_test_key",
		WebhookSecret: testWebhookSecret,
	})
}

func signPayload(t *testing.T, payload []byte) string {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, testWebhookSecret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func TestVerifyWebhook_CheckoutCompleted(t *testing.T) {
	payload := []byte(`{
		"id": "evt_1",
		"api_version": "2025-01-27.acacia",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_123",
				"client_reference_id": "inv-42",
				"amount_total": 45000,
				"currency": "usd"
			}
		}
	}`)

	ev, err := testClient().VerifyWebhook(payload, signPayload(t, payload))
	if err != nil {
		t.Fatalf("VerifyWebhook: %v", err)
	}
	if ev == nil {
		t.Fatal("expected a payment event")
	}
	if ev.InvoiceID != "inv-42" {
		t.Errorf("InvoiceID = %q, want %q", ev.InvoiceID, "inv-42")
	}
	if ev.AmountCents != 45000 {
		t.Errorf("AmountCents = %d, want 45000", ev.AmountCents)
	}
	if ev.Currency != "usd" {
		t.Errorf("Currency = %q, want %q", ev.Currency, "usd")
	}
	if ev.PaymentRef != "cs_test_123" {
		t.Errorf("PaymentRef = %q, want %q", ev.PaymentRef, "cs_test_123")
	}
}

func TestVerifyWebhook_IgnoresOtherEventTypes(t *testing.T) {
	payload := []byte(`{
		"id": "evt_2",
		"api_version": "2025-01-27.acacia",
		"type": "invoice.finalized",
		"data": {"object": {"id": "in_1"}}
	}`)

	ev, err := testClient().VerifyWebhook(payload, signPayload(t, payload))
	if err != nil {
		t.Fatalf("VerifyWebhook: %v", err)
	}
	if ev != nil {
		t.Fatalf("expected nil event for ignored type, got %+v", ev)
	}
}

func TestVerifyWebhook_RejectsBadSignature(t *testing.T) {
	payload := []byte(`{"id": "evt_3", "type": "checkout.session.completed", "data": {"object": {}}}`)
	header := fmt.Sprintf("t=%d,v1=%s", time.Now().Unix(), "deadbeef")

	if _, err := testClient().VerifyWebhook(payload, header); err == nil {
		t.Fatal("expected a signature error")
	}
}
