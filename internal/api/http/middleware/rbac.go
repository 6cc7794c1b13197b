package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/pkg/authorize"
	"github.com/evanshaw/cadence_backend/pkg/token"
)

// RequirePermission checks the authenticated user's role against the
// policy table for a resource/action pair.
func RequirePermission(auth *authorize.Authorizer, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := token.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		if !auth.Allowed(claims.Role, resource, action) {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}

// RequireCoach short-circuits routes that only the practice owner may hit.
func RequireCoach() fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := token.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if claims.Role != authorize.RoleCoach {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}
