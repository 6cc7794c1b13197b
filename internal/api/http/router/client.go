package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/internal/api/http/handler"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
)

func (r *Router) registerClientRoutes(
	api fiber.Router,
	ch *handler.ClientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	clients := api.Group("/clients", authRequired, requirePerm(authorize.ResourceClients, authorize.ActionManage))

	clients.Post("/", ch.Create)
	clients.Get("/", ch.List)
	clients.Get("/:id", ch.Get)
	clients.Patch("/:id", ch.Update)
}
