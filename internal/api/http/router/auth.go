package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, ah *handler.AuthHandler, authRequired fiber.Handler) {
	grp := api.Group("/auth")

	grp.Post("/login", ah.Login)
	grp.Post("/refresh", ah.Refresh)
	grp.Post("/password/forgot", ah.ForgotPassword)
	grp.Post("/password/reset", ah.ResetPassword)

	grp.Post("/logout", ah.Logout, authRequired)
	grp.Post("/verify-email/send", ah.SendVerification, authRequired)
	grp.Post("/verify-email", ah.VerifyEmail, authRequired)
	grp.Post("/password/change", ah.ChangePassword, authRequired)
}
