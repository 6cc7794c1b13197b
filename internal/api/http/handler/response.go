package handler

import "github.com/gofiber/fiber/v3"

// Every endpoint answers with the same envelope: successes carry the payload
// under "data", failures carry a message under "error".

func respond(c fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{"data": data})
}

func fail(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func ok(c fiber.Ctx, data any) error      { return respond(c, fiber.StatusOK, data) }
func created(c fiber.Ctx, data any) error { return respond(c, fiber.StatusCreated, data) }
func noContent(c fiber.Ctx) error         { return c.SendStatus(fiber.StatusNoContent) }

func badRequest(c fiber.Ctx, msg string) error { return fail(c, fiber.StatusBadRequest, msg) }
func notFound(c fiber.Ctx, msg string) error   { return fail(c, fiber.StatusNotFound, msg) }
func conflict(c fiber.Ctx, msg string) error   { return fail(c, fiber.StatusConflict, msg) }

func unauthorized(c fiber.Ctx) error { return fail(c, fiber.StatusUnauthorized, "unauthorized") }
func forbidden(c fiber.Ctx) error    { return fail(c, fiber.StatusForbidden, "forbidden") }

func tooManyRequests(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusTooManyRequests, msg)
}

func internalError(c fiber.Ctx) error {
	return fail(c, fiber.StatusInternalServerError, "internal server error")
}
