package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func mapContactError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, contact.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, contact.ErrMissingField), errors.Is(err, contact.ErrInvalidEmail):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /contact — public.
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
		Kind    string `json:"kind"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.Submit(c.Context(), contact.SubmitRequest{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Body:    body.Body,
		Kind:    body.Kind,
	})
	if err != nil {
		return mapContactError(c, err)
	}
	return created(c, fiber.Map{"id": msg.ID})
}

// GET /contact-messages
func (h *ContactHandler) List(c fiber.Ctx) error {
	var q struct {
		Kind          *string `query:"kind"`
		UnhandledOnly bool    `query:"unhandled_only"`
		Page          int     `query:"page"`
		PerPage       int     `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	msgs, err := h.svc.List(c.Context(), contact.ListRequest{
		Kind:          q.Kind,
		UnhandledOnly: q.UnhandledOnly,
		Page:          q.Page,
		PerPage:       q.PerPage,
	})
	if err != nil {
		return mapContactError(c, err)
	}
	return ok(c, msgs)
}

// GET /contact-messages/:id
func (h *ContactHandler) Get(c fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	msg, err := h.svc.GetByID(c.Context(), messageID)
	if err != nil {
		return mapContactError(c, err)
	}
	return ok(c, msg)
}

// PATCH /contact-messages/:id/handled
func (h *ContactHandler) MarkHandled(c fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	if err := h.svc.MarkHandled(c.Context(), messageID); err != nil {
		return mapContactError(c, err)
	}
	return noContent(c)
}
