package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/internal/api/http/handler"
	"github.com/evanshaw/cadence_backend/internal/api/http/middleware"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
)

func (r *Router) registerContactRoutes(
	api fiber.Router,
	ch *handler.ContactHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public form, rate-limited hard.
	api.Post("/contact", ch.Submit, middleware.NewPublicFormLimiter(r.p.Redis))

	msgs := api.Group("/contact-messages", authRequired, requirePerm(authorize.ResourceContact, authorize.ActionManage))
	msgs.Get("/", ch.List)
	msgs.Get("/:id", ch.Get)
	msgs.Patch("/:id/handled", ch.MarkHandled)
}
