package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/internal/api/http/handler"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
)

func (r *Router) registerSessionRoutes(
	api fiber.Router,
	sh *handler.SessionHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public: hit from the confirmation link in session emails.
	api.Post("/sessions/confirm/:token", sh.ConfirmByToken)

	sessions := api.Group("/sessions", authRequired)

	sessions.Get("/", sh.List, requirePerm(authorize.ResourceSessions, authorize.ActionRead))
	sessions.Get("/:id", sh.Get, requirePerm(authorize.ResourceSessions, authorize.ActionRead))

	manage := requirePerm(authorize.ResourceSessions, authorize.ActionManage)
	sessions.Post("/", sh.Create, manage)
	sessions.Patch("/:id/reschedule", sh.Reschedule, manage)
	sessions.Patch("/:id/cancel", sh.Cancel, manage)
	sessions.Patch("/:id/complete", sh.Complete, manage)
	sessions.Post("/:id/expand", sh.ExpandRecurrence, manage)
}
