package handler

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/service/resource"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
	"github.com/evanshaw/cadence_backend/pkg/token"
)

const maxUploadBytes = 50 << 20 // 50 MiB

type ResourceHandler struct {
	svc resource.Service
}

func NewResourceHandler(svc resource.Service) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

func mapResourceError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, resource.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, resource.ErrNotShared):
		return forbidden(c)
	case errors.Is(err, resource.ErrAlreadyShared):
		return conflict(c, err.Error())
	case errors.Is(err, resource.ErrInvalidKind),
		errors.Is(err, resource.ErrNoFile),
		errors.Is(err, resource.ErrMissingContent):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /library
func (h *ResourceHandler) Create(c fiber.Ctx) error {
	var body struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Kind        string  `json:"kind"`
		ExternalURL *string `json:"external_url"`
		Published   bool    `json:"published"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" || body.Kind == "" {
		return badRequest(c, "title and kind are required")
	}

	res, err := h.svc.Create(c.Context(), resource.CreateRequest{
		Title:       body.Title,
		Description: body.Description,
		Kind:        body.Kind,
		ExternalURL: body.ExternalURL,
		Published:   body.Published,
	})
	if err != nil {
		return mapResourceError(c, err)
	}
	return created(c, res)
}

// GET /library
func (h *ResourceHandler) List(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	// Clients see their shared resources; the coach sees everything.
	if claims.Role == authorize.RoleClient {
		resources, err := h.svc.ListForClient(c.Context(), claims.UserID)
		if err != nil {
			return mapResourceError(c, err)
		}
		return ok(c, resources)
	}

	resources, err := h.svc.List(c.Context(), false)
	if err != nil {
		return mapResourceError(c, err)
	}
	return ok(c, resources)
}

// PATCH /library/:id
func (h *ResourceHandler) Update(c fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid resource id")
	}

	var body resource.UpdateRequest
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Update(c.Context(), resourceID, body)
	if err != nil {
		return mapResourceError(c, err)
	}
	return ok(c, res)
}

// DELETE /library/:id
func (h *ResourceHandler) Delete(c fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid resource id")
	}

	if err := h.svc.Delete(c.Context(), resourceID); err != nil {
		return mapResourceError(c, err)
	}
	return noContent(c)
}

// POST /library/:id/file
func (h *ResourceHandler) Upload(c fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid resource id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return badRequest(c, "file exceeds the 50 MiB limit")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "cannot read uploaded file")
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return internalError(c)
	}

	res, err := h.svc.AttachFile(c.Context(), resourceID, resource.UploadRequest{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        int64(buf.Len()),
		Body:        &buf,
	})
	if err != nil {
		return mapResourceError(c, err)
	}
	return ok(c, res)
}

// GET /library/:id/download
func (h *ResourceHandler) Download(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	resourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid resource id")
	}

	var clientID *uuid.UUID
	if claims.Role == authorize.RoleClient {
		clientID = &claims.UserID
	}

	url, err := h.svc.DownloadURL(c.Context(), resourceID, clientID)
	if err != nil {
		return mapResourceError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}

// POST /library/:id/share
func (h *ResourceHandler) Share(c fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid resource id")
	}

	var body struct {
		ClientID string `json:"client_id"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}

	if err := h.svc.Share(c.Context(), resourceID, clientID); err != nil {
		return mapResourceError(c, err)
	}
	return noContent(c)
}

// DELETE /library/:id/share/:clientId
func (h *ResourceHandler) Unshare(c fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid resource id")
	}
	clientID, err := uuid.Parse(c.Params("clientId"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	if err := h.svc.Unshare(c.Context(), resourceID, clientID); err != nil {
		return mapResourceError(c, err)
	}
	return noContent(c)
}
