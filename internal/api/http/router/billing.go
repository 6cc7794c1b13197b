package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/internal/api/http/handler"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
)

func (r *Router) registerBillingRoutes(
	api fiber.Router,
	bh *handler.BillingHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public: Stripe calls this with a signed payload.
	api.Post("/webhooks/stripe", bh.StripeWebhook)

	invoices := api.Group("/invoices", authRequired)

	read := requirePerm(authorize.ResourceBilling, authorize.ActionRead)
	invoices.Get("/", bh.ListInvoices, read)
	invoices.Get("/:id", bh.GetInvoice, read)
	invoices.Get("/:id/payments", bh.ListPayments, read)

	manage := requirePerm(authorize.ResourceBilling, authorize.ActionManage)
	invoices.Post("/", bh.CreateInvoice, manage)
	invoices.Post("/:id/send", bh.SendInvoice, manage)
	invoices.Post("/:id/void", bh.VoidInvoice, manage)
	invoices.Post("/:id/mark-paid", bh.MarkPaid, manage)
}
