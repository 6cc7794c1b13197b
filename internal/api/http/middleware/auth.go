package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/evanshaw/cadence_backend/pkg/token"
)

// AuthRequired validates a Bearer JWT access token and checks the session
// in Redis. On success, stores *token.Claims in c.Locals(token.CtxKeyClaims).
func AuthRequired(mgr *token.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		scheme, raw, found := strings.Cut(c.Get("Authorization"), " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(strings.TrimSpace(raw))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes.
		if claims.Type != token.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// Logout deletes the session key, killing the token early.
		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(token.CtxKeyClaims, claims)
		return c.Next()
	}
}
