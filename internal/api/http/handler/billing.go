package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/service/billing"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
	"github.com/evanshaw/cadence_backend/pkg/payments"
	"github.com/evanshaw/cadence_backend/pkg/token"
)

type BillingHandler struct {
	svc    billing.Service
	stripe *payments.Client
}

func NewBillingHandler(svc billing.Service, stripe *payments.Client) *BillingHandler {
	return &BillingHandler{svc: svc, stripe: stripe}
}

func mapBillingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, billing.ErrInvoiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, billing.ErrInvalidAmount):
		return badRequest(c, err.Error())
	case errors.Is(err, billing.ErrInvoiceNotOpen), errors.Is(err, billing.ErrAlreadyRecorded):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /invoices
func (h *BillingHandler) CreateInvoice(c fiber.Ctx) error {
	var body struct {
		ClientID    string  `json:"client_id"`
		Description string  `json:"description"`
		AmountCents int64   `json:"amount_cents"`
		Currency    string  `json:"currency"`
		DueOn       *string `json:"due_on"` // YYYY-MM-DD
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}

	req := billing.CreateInvoiceRequest{
		ClientID:    clientID,
		Description: body.Description,
		AmountCents: body.AmountCents,
		Currency:    body.Currency,
	}
	if body.DueOn != nil {
		due, err := time.Parse("2006-01-02", *body.DueOn)
		if err != nil {
			return badRequest(c, "due_on must be YYYY-MM-DD")
		}
		req.DueOn = &due
	}

	inv, err := h.svc.CreateInvoice(c.Context(), req)
	if err != nil {
		return mapBillingError(c, err)
	}
	return created(c, inv)
}

// GET /invoices
func (h *BillingHandler) ListInvoices(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		ClientID *string `query:"client_id"`
		Status   *string `query:"status"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	req := billing.ListInvoicesRequest{Status: q.Status}
	if claims.Role == authorize.RoleClient {
		req.ClientID = &claims.UserID
	} else if q.ClientID != nil {
		id, err := uuid.Parse(*q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}

	invoices, err := h.svc.ListInvoices(c.Context(), req)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, invoices)
}

// GET /invoices/:id
func (h *BillingHandler) GetInvoice(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	inv, err := h.svc.GetInvoice(c.Context(), invoiceID)
	if err != nil {
		return mapBillingError(c, err)
	}
	if claims.Role == authorize.RoleClient && inv.ClientID != claims.UserID {
		return forbidden(c)
	}
	return ok(c, inv)
}

// POST /invoices/:id/send
func (h *BillingHandler) SendInvoice(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	inv, err := h.svc.SendInvoice(c.Context(), invoiceID)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, inv)
}

// POST /invoices/:id/void
func (h *BillingHandler) VoidInvoice(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	inv, err := h.svc.VoidInvoice(c.Context(), invoiceID)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, inv)
}

// POST /invoices/:id/mark-paid
func (h *BillingHandler) MarkPaid(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	var body struct {
		Reference string `json:"reference"`
	}
	_ = c.Bind().Body(&body)

	inv, err := h.svc.MarkPaidManually(c.Context(), invoiceID, body.Reference)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, inv)
}

// GET /invoices/:id/payments
func (h *BillingHandler) ListPayments(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	pays, err := h.svc.ListPayments(c.Context(), invoiceID)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, pays)
}

// POST /webhooks/stripe — public, signature-verified.
func (h *BillingHandler) StripeWebhook(c fiber.Ctx) error {
	ev, err := h.stripe.VerifyWebhook(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		return badRequest(c, "invalid webhook signature")
	}
	if ev == nil {
		// Event type we don't care about; ack it so Stripe stops retrying.
		return noContent(c)
	}

	if err := h.svc.RecordPayment(c.Context(), *ev); err != nil {
		return internalError(c)
	}
	return noContent(c)
}
