package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/internal/api/http/handler"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
)

func (r *Router) registerActionItemRoutes(
	api fiber.Router,
	ah *handler.ActionItemHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	items := api.Group("/action-items", authRequired)

	items.Get("/", ah.List, requirePerm(authorize.ResourceActionItems, authorize.ActionRead))
	items.Patch("/:id/done", ah.MarkDone, requirePerm(authorize.ResourceActionItems, authorize.ActionWrite))

	manage := requirePerm(authorize.ResourceActionItems, authorize.ActionManage)
	items.Post("/", ah.Create, manage)
	items.Patch("/:id", ah.Update, manage)
	items.Patch("/:id/reopen", ah.Reopen, manage)
	items.Delete("/:id", ah.Delete, manage)
}
