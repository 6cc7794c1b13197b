package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/internal/api/http/handler"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
)

func (r *Router) registerResourceRoutes(
	api fiber.Router,
	rh *handler.ResourceHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	library := api.Group("/library", authRequired)

	library.Get("/", rh.List, requirePerm(authorize.ResourceLibrary, authorize.ActionRead))
	library.Get("/:id/download", rh.Download, requirePerm(authorize.ResourceLibrary, authorize.ActionRead))

	manage := requirePerm(authorize.ResourceLibrary, authorize.ActionManage)
	library.Post("/", rh.Create, manage)
	library.Patch("/:id", rh.Update, manage)
	library.Delete("/:id", rh.Delete, manage)
	library.Post("/:id/file", rh.Upload, manage)
	library.Post("/:id/share", rh.Share, manage)
	library.Delete("/:id/share/:clientId", rh.Unshare, manage)
}
