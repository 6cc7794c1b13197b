package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/internal/api/http/handler"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	nh *handler.NotificationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	read := requirePerm(authorize.ResourceNotifications, authorize.ActionRead)
	write := requirePerm(authorize.ResourceNotifications, authorize.ActionWrite)

	notifs := api.Group("/notifications", authRequired)
	notifs.Get("/", nh.List, read)
	notifs.Patch("/read-all", nh.MarkAllRead, write)
	notifs.Patch("/:id/read", nh.MarkRead, write)

	// Channel preferences live under /users/me since they belong to the
	// signed-in user, not to any one notification.
	me := api.Group("/users/me", authRequired)
	me.Get("/notification-prefs", nh.GetPrefs, read)
	me.Put("/notification-prefs", nh.UpdatePrefs, write)
}
