package token

import "github.com/gofiber/fiber/v3"

const CtxKeyClaims = "auth.claims"

// ClaimsFromFiber retrieves the verified claims stored by the auth middleware.
func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}
