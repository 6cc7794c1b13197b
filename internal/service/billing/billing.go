package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entinvoice "github.com/evanshaw/cadence_backend/internal/repo/invoice"
	entpayment "github.com/evanshaw/cadence_backend/internal/repo/payment"
	entuser "github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/evanshaw/cadence_backend/internal/service/notification"
	"github.com/evanshaw/cadence_backend/pkg/payments"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateInvoiceRequest struct {
	ClientID    uuid.UUID
	Description string
	AmountCents int64
	Currency    string
	DueOn       *time.Time
}

type ListInvoicesRequest struct {
	ClientID *uuid.UUID
	Status   *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*repo.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID uuid.UUID) (*repo.Invoice, error)
	ListInvoices(ctx context.Context, req ListInvoicesRequest) ([]*repo.Invoice, error)

	// SendInvoice moves a draft to sent, creates a Stripe Checkout link
	// when payments are enabled, and notifies the client.
	SendInvoice(ctx context.Context, invoiceID uuid.UUID) (*repo.Invoice, error)
	VoidInvoice(ctx context.Context, invoiceID uuid.UUID) (*repo.Invoice, error)

	// RecordPayment applies a verified payment event to its invoice.
	// Replayed events (same provider ref) are no-ops.
	RecordPayment(ctx context.Context, ev payments.PaymentEvent) error

	// MarkPaidManually records an out-of-band payment (bank transfer, cash).
	MarkPaidManually(ctx context.Context, invoiceID uuid.UUID, reference string) (*repo.Invoice, error)

	ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]*repo.Payment, error)
}

type billingService struct {
	db       *repo.Client
	stripe   *payments.Client
	notifier notification.Service
}

func New(db *repo.Client, stripe *payments.Client, notifier notification.Service) Service {
	return &billingService{db: db, stripe: stripe, notifier: notifier}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *billingService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*repo.Invoice, error) {
	if req.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	number, err := s.nextNumber(ctx)
	if err != nil {
		return nil, err
	}

	c := s.db.Invoice.Create().
		SetClientID(req.ClientID).
		SetNumber(number).
		SetAmountCents(req.AmountCents).
		SetIssuedOn(time.Now().UTC())
	if req.Description != "" {
		c = c.SetDescription(req.Description)
	}
	if req.Currency != "" {
		c = c.SetCurrency(req.Currency)
	}
	if req.DueOn != nil {
		c = c.SetDueOn(req.DueOn.UTC())
	}

	inv, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

func (s *billingService) GetInvoice(ctx context.Context, invoiceID uuid.UUID) (*repo.Invoice, error) {
	inv, err := s.db.Invoice.Get(ctx, invoiceID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (s *billingService) ListInvoices(ctx context.Context, req ListInvoicesRequest) ([]*repo.Invoice, error) {
	q := s.db.Invoice.Query()
	if req.ClientID != nil {
		q = q.Where(entinvoice.ClientID(*req.ClientID))
	}
	if req.Status != nil {
		q = q.Where(entinvoice.StatusEQ(entinvoice.Status(*req.Status)))
	}

	invoices, err := q.
		Order(entinvoice.ByIssuedOn(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

func (s *billingService) SendInvoice(ctx context.Context, invoiceID uuid.UUID) (*repo.Invoice, error) {
	inv, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != entinvoice.StatusDraft && inv.Status != entinvoice.StatusSent {
		return nil, ErrInvoiceNotOpen
	}

	u := s.db.Invoice.UpdateOne(inv).
		SetStatus(entinvoice.StatusSent)

	checkoutURL := inv.CheckoutURL
	if checkoutURL == "" {
		client, err := s.db.User.Query().
			Where(entuser.ID(inv.ClientID)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("get invoice client: %w", err)
		}

		url, err := s.stripe.CreateCheckout(payments.CheckoutRequest{
			InvoiceID:   inv.ID.String(),
			Description: fmt.Sprintf("Invoice %s", inv.Number),
			AmountCents: inv.AmountCents,
			Currency:    inv.Currency,
			ClientEmail: client.Email,
		})
		switch {
		case errors.Is(err, payments.ErrDisabled):
			// Invoice still goes out; the client pays out of band.
		case err != nil:
			return nil, fmt.Errorf("create checkout: %w", err)
		default:
			checkoutURL = url
			u = u.SetCheckoutURL(url)
		}
	}

	inv, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("send invoice: %w", err)
	}

	body := fmt.Sprintf("Invoice %s for %s is ready.", inv.Number, formatAmount(inv.AmountCents, inv.Currency))
	_, _ = s.notifier.Dispatch(ctx, notification.DispatchRequest{
		UserID:    inv.ClientID,
		EventType: "invoiceIssued",
		Title:     "New invoice",
		Body:      &body,
		Data:      map[string]any{"invoiceId": inv.ID.String()},
		ActionURL: checkoutURL,
	})

	return inv, nil
}

func (s *billingService) VoidInvoice(ctx context.Context, invoiceID uuid.UUID) (*repo.Invoice, error) {
	inv, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == entinvoice.StatusPaid {
		return nil, ErrInvoiceNotOpen
	}

	inv, err = s.db.Invoice.UpdateOne(inv).
		SetStatus(entinvoice.StatusVoid).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("void invoice: %w", err)
	}
	return inv, nil
}

func (s *billingService) RecordPayment(ctx context.Context, ev payments.PaymentEvent) error {
	invoiceID, err := uuid.Parse(ev.InvoiceID)
	if err != nil {
		return fmt.Errorf("parse invoice id %q: %w", ev.InvoiceID, err)
	}

	// The provider ref is unique, so webhook replays are absorbed here.
	exists, err := s.db.Payment.Query().
		Where(entpayment.ProviderRef(ev.PaymentRef)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check payment: %w", err)
	}
	if exists {
		return nil
	}

	inv, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := tx.Payment.Create().
		SetInvoiceID(invoiceID).
		SetAmountCents(ev.AmountCents).
		SetCurrency(ev.Currency).
		SetProvider("stripe").
		SetProviderRef(ev.PaymentRef).
		Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("create payment: %w", err)
	}

	if err := tx.Invoice.UpdateOneID(invoiceID).
		SetStatus(entinvoice.StatusPaid).
		SetPaidAt(time.Now().UTC()).
		Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("mark invoice paid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	body := fmt.Sprintf("We received your payment of %s for invoice %s. Thank you!",
		formatAmount(ev.AmountCents, ev.Currency), inv.Number)
	_, _ = s.notifier.Dispatch(ctx, notification.DispatchRequest{
		UserID:    inv.ClientID,
		EventType: "paymentReceived",
		Title:     "Payment received",
		Body:      &body,
		Data:      map[string]any{"invoiceId": inv.ID.String()},
	})

	return nil
}

func (s *billingService) MarkPaidManually(ctx context.Context, invoiceID uuid.UUID, reference string) (*repo.Invoice, error) {
	inv, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == entinvoice.StatusPaid {
		return nil, ErrAlreadyRecorded
	}
	if inv.Status == entinvoice.StatusVoid {
		return nil, ErrInvoiceNotOpen
	}

	if reference == "" {
		reference = fmt.Sprintf("manual-%s", uuid.Must(uuid.NewV7()))
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	if err := tx.Payment.Create().
		SetInvoiceID(inv.ID).
		SetAmountCents(inv.AmountCents).
		SetCurrency(inv.Currency).
		SetProvider("manual").
		SetProviderRef(reference).
		Exec(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create payment: %w", err)
	}

	inv, err = tx.Invoice.UpdateOne(inv).
		SetStatus(entinvoice.StatusPaid).
		SetPaidAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("mark invoice paid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return inv, nil
}

func (s *billingService) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]*repo.Payment, error) {
	pays, err := s.db.Payment.Query().
		Where(entpayment.InvoiceID(invoiceID)).
		Order(entpayment.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return pays, nil
}

// nextNumber produces sequential numbers like INV-2026-0042, scoped to
// the issue year.
func (s *billingService) nextNumber(ctx context.Context) (string, error) {
	year := time.Now().UTC().Year()
	prefix := fmt.Sprintf("INV-%d-", year)

	count, err := s.db.Invoice.Query().
		Where(entinvoice.NumberHasPrefix(prefix)).
		Count(ctx)
	if err != nil {
		return "", fmt.Errorf("count invoices: %w", err)
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

func formatAmount(cents int64, currency string) string {
	if currency == "" {
		currency = "usd"
	}
	return fmt.Sprintf("%.2f %s", float64(cents)/100, strings.ToUpper(currency))
}
