package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/service/client"
)

type ClientHandler struct {
	svc client.Service
}

func NewClientHandler(svc client.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func mapClientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, client.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, client.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, client.ErrInvalidZone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /clients
func (h *ClientHandler) Create(c fiber.Ctx) error {
	var body struct {
		Email     string  `json:"email"`
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Timezone  string  `json:"timezone"`
		Password  string  `json:"password"`
		Company   *string `json:"company"`
		Goals     *string `json:"goals"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.FirstName == "" {
		return badRequest(c, "email and first_name are required")
	}

	detail, err := h.svc.Create(c.Context(), client.CreateRequest{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Timezone:  body.Timezone,
		Password:  body.Password,
		Company:   body.Company,
		Goals:     body.Goals,
	})
	if err != nil {
		return mapClientError(c, err)
	}
	return created(c, detail)
}

// GET /clients
func (h *ClientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Search  string `query:"search"`
		Active  *bool  `query:"active"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	result, err := h.svc.List(c.Context(), client.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
		Active:  q.Active,
	})
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, result)
}

// GET /clients/:id
func (h *ClientHandler) Get(c fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	detail, err := h.svc.GetByID(c.Context(), clientID)
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, detail)
}

// PATCH /clients/:id
func (h *ClientHandler) Update(c fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var body client.UpdateRequest
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	detail, err := h.svc.Update(c.Context(), clientID, body)
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, detail)
}
