package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/service/session"
	"github.com/evanshaw/cadence_backend/pkg/authorize"
	"github.com/evanshaw/cadence_backend/pkg/token"
)

type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func mapSessionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrTokenNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrInvalidTime),
		errors.Is(err, session.ErrInvalidTimezone),
		errors.Is(err, session.ErrInvalidRecurrence):
		return badRequest(c, err.Error())
	case errors.Is(err, session.ErrAlreadyFinal):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /sessions
func (h *SessionHandler) Create(c fiber.Ctx) error {
	var body struct {
		ClientID        string  `json:"client_id"`
		Title           *string `json:"title"`
		ScheduledAt     string  `json:"scheduled_at"` // RFC 3339
		DurationMinutes int     `json:"duration_minutes"`
		Timezone        string  `json:"timezone"`
		RecurrenceRule  *string `json:"recurrence_rule"`
		Notes           *string `json:"notes"`
		MeetingURL      *string `json:"meeting_url"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}
	when, err := time.Parse(time.RFC3339, body.ScheduledAt)
	if err != nil {
		return badRequest(c, "scheduled_at must be RFC 3339")
	}

	sess, err := h.svc.Create(c.Context(), session.CreateRequest{
		ClientID:        clientID,
		Title:           body.Title,
		ScheduledAt:     when,
		DurationMinutes: body.DurationMinutes,
		Timezone:        body.Timezone,
		RecurrenceRule:  body.RecurrenceRule,
		Notes:           body.Notes,
		MeetingURL:      body.MeetingURL,
	})
	if err != nil {
		return mapSessionError(c, err)
	}
	return created(c, sess)
}

// GET /sessions
func (h *SessionHandler) List(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		Page     int     `query:"page"`
		PerPage  int     `query:"per_page"`
		ClientID *string `query:"client_id"`
		Status   *string `query:"status"`
		From     *string `query:"from"`
		To       *string `query:"to"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	req := session.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Status:  q.Status,
	}

	// Clients only ever see their own sessions.
	if claims.Role == authorize.RoleClient {
		req.ClientID = &claims.UserID
	} else if q.ClientID != nil {
		id, err := uuid.Parse(*q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}

	if q.From != nil {
		t, err := time.Parse(time.RFC3339, *q.From)
		if err != nil {
			return badRequest(c, "from must be RFC 3339")
		}
		req.From = &t
	}
	if q.To != nil {
		t, err := time.Parse(time.RFC3339, *q.To)
		if err != nil {
			return badRequest(c, "to must be RFC 3339")
		}
		req.To = &t
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, result)
}

// GET /sessions/:id
func (h *SessionHandler) Get(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	sess, err := h.svc.GetByID(c.Context(), sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}
	if claims.Role == authorize.RoleClient && sess.ClientID != claims.UserID {
		return forbidden(c)
	}
	return ok(c, sess)
}

// POST /sessions/confirm/:token — public, hit from the email link.
func (h *SessionHandler) ConfirmByToken(c fiber.Ctx) error {
	confirmToken := c.Params("token")
	if confirmToken == "" {
		return badRequest(c, "missing confirmation token")
	}

	sess, err := h.svc.ConfirmByToken(c.Context(), confirmToken)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, sess)
}

// PATCH /sessions/:id/reschedule
func (h *SessionHandler) Reschedule(c fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		ScheduledAt string  `json:"scheduled_at"`
		Timezone    *string `json:"timezone"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	when, err := time.Parse(time.RFC3339, body.ScheduledAt)
	if err != nil {
		return badRequest(c, "scheduled_at must be RFC 3339")
	}

	sess, err := h.svc.Reschedule(c.Context(), sessionID, session.RescheduleRequest{
		ScheduledAt: when,
		Timezone:    body.Timezone,
	})
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, sess)
}

// PATCH /sessions/:id/cancel
func (h *SessionHandler) Cancel(c fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.Bind().Body(&body)

	sess, err := h.svc.Cancel(c.Context(), sessionID, body.Reason)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, sess)
}

// PATCH /sessions/:id/complete
func (h *SessionHandler) Complete(c fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		Notes *string `json:"notes"`
	}
	_ = c.Bind().Body(&body)

	sess, err := h.svc.Complete(c.Context(), sessionID, body.Notes)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, sess)
}

// POST /sessions/:id/expand
func (h *SessionHandler) ExpandRecurrence(c fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	sessions, err := h.svc.ExpandRecurrence(c.Context(), sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}
	return created(c, sessions)
}
