package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/service/actionitem"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
	"github.com/evanshaw/cadence_backend/pkg/token"
)

type ActionItemHandler struct {
	svc actionitem.Service
}

func NewActionItemHandler(svc actionitem.Service) *ActionItemHandler {
	return &ActionItemHandler{svc: svc}
}

func mapActionItemError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, actionitem.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, actionitem.ErrInvalidDue):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /action-items
func (h *ActionItemHandler) Create(c fiber.Ctx) error {
	var body struct {
		ClientID  string  `json:"client_id"`
		SessionID *string `json:"session_id"`
		Title     string  `json:"title"`
		Notes     *string `json:"notes"`
		DueOn     *string `json:"due_on"` // YYYY-MM-DD
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}

	req := actionitem.CreateRequest{
		ClientID: clientID,
		Title:    body.Title,
		Notes:    body.Notes,
	}
	if body.SessionID != nil {
		id, err := uuid.Parse(*body.SessionID)
		if err != nil {
			return badRequest(c, "invalid session_id")
		}
		req.SessionID = &id
	}
	if body.DueOn != nil {
		due, err := time.Parse("2006-01-02", *body.DueOn)
		if err != nil {
			return badRequest(c, "due_on must be YYYY-MM-DD")
		}
		req.DueOn = &due
	}

	item, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapActionItemError(c, err)
	}
	return created(c, item)
}

// GET /action-items
func (h *ActionItemHandler) List(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		ClientID *string `query:"client_id"`
		Status   *string `query:"status"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	req := actionitem.ListRequest{Status: q.Status}
	if claims.Role == authorize.RoleClient {
		req.ClientID = &claims.UserID
	} else if q.ClientID != nil {
		id, err := uuid.Parse(*q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}

	items, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapActionItemError(c, err)
	}
	return ok(c, items)
}

// PATCH /action-items/:id
func (h *ActionItemHandler) Update(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid action item id")
	}

	var body struct {
		Title *string `json:"title"`
		Notes *string `json:"notes"`
		DueOn *string `json:"due_on"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := actionitem.UpdateRequest{
		Title: body.Title,
		Notes: body.Notes,
	}
	if body.DueOn != nil {
		due, err := time.Parse("2006-01-02", *body.DueOn)
		if err != nil {
			return badRequest(c, "due_on must be YYYY-MM-DD")
		}
		req.DueOn = &due
	}

	item, err := h.svc.Update(c.Context(), itemID, req)
	if err != nil {
		return mapActionItemError(c, err)
	}
	return ok(c, item)
}

// PATCH /action-items/:id/done
func (h *ActionItemHandler) MarkDone(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid action item id")
	}

	item, err := h.svc.MarkDone(c.Context(), itemID, claims.UserID)
	if err != nil {
		return mapActionItemError(c, err)
	}
	return ok(c, item)
}

// PATCH /action-items/:id/reopen
func (h *ActionItemHandler) Reopen(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid action item id")
	}

	item, err := h.svc.Reopen(c.Context(), itemID)
	if err != nil {
		return mapActionItemError(c, err)
	}
	return ok(c, item)
}

// DELETE /action-items/:id
func (h *ActionItemHandler) Delete(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid action item id")
	}

	if err := h.svc.Delete(c.Context(), itemID); err != nil {
		return mapActionItemError(c, err)
	}
	return noContent(c)
}
