package session

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entsession "github.com/evanshaw/cadence_backend/internal/repo/session"
	"github.com/evanshaw/cadence_backend/internal/service/notification"
	"github.com/evanshaw/cadence_backend/pkg/util/otp"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page     int
	PerPage  int
	ClientID *uuid.UUID
	Status   *string
	From     *time.Time
	To       *time.Time
}

type CreateRequest struct {
	ClientID        uuid.UUID
	Title           *string
	ScheduledAt     time.Time // any zone; stored UTC
	DurationMinutes int
	Timezone        string
	RecurrenceRule  *string
	Notes           *string
	MeetingURL      *string
}

type RescheduleRequest struct {
	ScheduledAt time.Time
	Timezone    *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Session, error)
	GetByID(ctx context.Context, sessionID uuid.UUID) (*repo.Session, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Session], error)

	// ConfirmByToken flips a pending session to confirmed via the token
	// emailed to the client. It works without authentication.
	ConfirmByToken(ctx context.Context, confirmToken string) (*repo.Session, error)

	Reschedule(ctx context.Context, sessionID uuid.UUID, req RescheduleRequest) (*repo.Session, error)
	Cancel(ctx context.Context, sessionID uuid.UUID, reason string) (*repo.Session, error)
	Complete(ctx context.Context, sessionID uuid.UUID, notes *string) (*repo.Session, error)

	// DueForReminder returns confirmed or pending sessions starting within
	// the lead window that have not had a reminder yet.
	DueForReminder(ctx context.Context, leadTime time.Duration) ([]*repo.Session, error)
	MarkReminderSent(ctx context.Context, sessionID uuid.UUID) error

	// ExpandRecurrence materializes the next occurrences of a recurring
	// session as fresh pending sessions.
	ExpandRecurrence(ctx context.Context, sessionID uuid.UUID) ([]*repo.Session, error)
}

type sessionService struct {
	db       *repo.Client
	notifier notification.Service
	baseURL  string
}

func New(db *repo.Client, notifier notification.Service, baseURL string) Service {
	return &sessionService{db: db, notifier: notifier, baseURL: baseURL}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *sessionService) Create(ctx context.Context, req CreateRequest) (*repo.Session, error) {
	when := req.ScheduledAt.UTC()
	if !when.After(time.Now().UTC()) {
		return nil, ErrInvalidTime
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, ErrInvalidTimezone
	}

	if req.RecurrenceRule != nil && *req.RecurrenceRule != "" {
		if _, err := parseRule(*req.RecurrenceRule, when); err != nil {
			return nil, ErrInvalidRecurrence
		}
	}

	confirmToken, err := otp.GenerateHex(24)
	if err != nil {
		return nil, fmt.Errorf("generate confirm token: %w", err)
	}

	c := s.db.Session.Create().
		SetClientID(req.ClientID).
		SetScheduledAt(when).
		SetTimezone(tz).
		SetConfirmToken(confirmToken)
	if req.Title != nil {
		c = c.SetTitle(*req.Title)
	}
	if req.DurationMinutes > 0 {
		c = c.SetDurationMinutes(req.DurationMinutes)
	}
	if req.RecurrenceRule != nil && *req.RecurrenceRule != "" {
		c = c.SetRecurrenceRule(*req.RecurrenceRule)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}
	if req.MeetingURL != nil {
		c = c.SetMeetingURL(*req.MeetingURL)
	}

	sess, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.dispatchSessionEvent(ctx, sess, "sessionScheduled", "New session scheduled",
		fmt.Sprintf("A session has been scheduled for %s. Please confirm it.", s.localWhen(sess)),
		fmt.Sprintf("%s/sessions/confirm/%s", s.baseURL, confirmToken))

	return sess, nil
}

func (s *sessionService) GetByID(ctx context.Context, sessionID uuid.UUID) (*repo.Session, error) {
	sess, err := s.db.Session.Get(ctx, sessionID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Session], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Session.Query()
	if req.ClientID != nil {
		q = q.Where(entsession.ClientID(*req.ClientID))
	}
	if req.Status != nil {
		q = q.Where(entsession.StatusEQ(entsession.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entsession.ScheduledAtGTE(req.From.UTC()))
	}
	if req.To != nil {
		q = q.Where(entsession.ScheduledAtLT(req.To.UTC()))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	sessions, err := q.
		Order(entsession.ByScheduledAt(sql.OrderAsc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return &PaginatedResult[*repo.Session]{
		Data:       sessions,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}

func (s *sessionService) ConfirmByToken(ctx context.Context, confirmToken string) (*repo.Session, error) {
	sess, err := s.db.Session.Query().
		Where(entsession.ConfirmToken(confirmToken)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("get session by token: %w", err)
	}

	switch sess.Status {
	case entsession.StatusConfirmed:
		// Confirming twice is fine.
		return sess, nil
	case entsession.StatusCompleted, entsession.StatusCancelled:
		return nil, ErrAlreadyFinal
	}

	sess, err = s.db.Session.UpdateOne(sess).
		SetStatus(entsession.StatusConfirmed).
		SetConfirmedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirm session: %w", err)
	}

	s.dispatchSessionEvent(ctx, sess, "sessionConfirmed", "Session confirmed",
		fmt.Sprintf("Your session on %s is confirmed.", s.localWhen(sess)), "")

	return sess, nil
}

func (s *sessionService) Reschedule(ctx context.Context, sessionID uuid.UUID, req RescheduleRequest) (*repo.Session, error) {
	sess, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == entsession.StatusCompleted || sess.Status == entsession.StatusCancelled {
		return nil, ErrAlreadyFinal
	}

	when := req.ScheduledAt.UTC()
	if !when.After(time.Now().UTC()) {
		return nil, ErrInvalidTime
	}

	u := s.db.Session.UpdateOne(sess).
		SetScheduledAt(when).
		SetStatus(entsession.StatusPendingConfirmation).
		ClearConfirmedAt().
		ClearReminderSentAt()
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
		u = u.SetTimezone(*req.Timezone)
	}

	sess, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reschedule session: %w", err)
	}

	s.dispatchSessionEvent(ctx, sess, "sessionRescheduled", "Session rescheduled",
		fmt.Sprintf("Your session has moved to %s. Please confirm the new time.", s.localWhen(sess)),
		fmt.Sprintf("%s/sessions/confirm/%s", s.baseURL, sess.ConfirmToken))

	return sess, nil
}

func (s *sessionService) Cancel(ctx context.Context, sessionID uuid.UUID, reason string) (*repo.Session, error) {
	sess, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == entsession.StatusCompleted || sess.Status == entsession.StatusCancelled {
		return nil, ErrAlreadyFinal
	}

	u := s.db.Session.UpdateOne(sess).
		SetStatus(entsession.StatusCancelled).
		SetCancelledAt(time.Now().UTC())
	if reason != "" {
		u = u.SetCancelReason(reason)
	}

	sess, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel session: %w", err)
	}

	body := fmt.Sprintf("Your session on %s has been cancelled.", s.localWhen(sess))
	if reason != "" {
		body += " Reason: " + reason
	}
	s.dispatchSessionEvent(ctx, sess, "sessionCancelled", "Session cancelled", body, "")

	return sess, nil
}

func (s *sessionService) Complete(ctx context.Context, sessionID uuid.UUID, notes *string) (*repo.Session, error) {
	sess, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == entsession.StatusCompleted || sess.Status == entsession.StatusCancelled {
		return nil, ErrAlreadyFinal
	}

	u := s.db.Session.UpdateOne(sess).
		SetStatus(entsession.StatusCompleted)
	if notes != nil {
		u = u.SetNillableNotes(notes)
	}

	sess, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) DueForReminder(ctx context.Context, leadTime time.Duration) ([]*repo.Session, error) {
	now := time.Now().UTC()

	sessions, err := s.db.Session.Query().
		Where(
			entsession.StatusIn(entsession.StatusPendingConfirmation, entsession.StatusConfirmed),
			entsession.ScheduledAtGT(now),
			entsession.ScheduledAtLTE(now.Add(leadTime)),
			entsession.ReminderSentAtIsNil(),
		).
		Order(entsession.ByScheduledAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions due for reminder: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) MarkReminderSent(ctx context.Context, sessionID uuid.UUID) error {
	return s.db.Session.UpdateOneID(sessionID).
		SetReminderSentAt(time.Now().UTC()).
		Exec(ctx)
}

func (s *sessionService) ExpandRecurrence(ctx context.Context, sessionID uuid.UUID) ([]*repo.Session, error) {
	sess, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.RecurrenceRule == "" {
		return nil, nil
	}

	// Skip occurrences that already exist for this client at the same
	// instant, so expansion is safe to re-run.
	latest, err := s.db.Session.Query().
		Where(entsession.ClientID(sess.ClientID)).
		Order(entsession.ByScheduledAt(sql.OrderDesc())).
		First(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get latest session: %w", err)
	}

	after := sess.ScheduledAt
	if latest != nil && latest.ScheduledAt.After(after) {
		after = latest.ScheduledAt
	}

	times, err := expandRule(sess.RecurrenceRule, sess.ScheduledAt, after)
	if err != nil {
		return nil, ErrInvalidRecurrence
	}

	created := make([]*repo.Session, 0, len(times))
	for _, when := range times {
		confirmToken, err := otp.GenerateHex(24)
		if err != nil {
			return nil, fmt.Errorf("generate confirm token: %w", err)
		}

		c := s.db.Session.Create().
			SetClientID(sess.ClientID).
			SetScheduledAt(when).
			SetDurationMinutes(sess.DurationMinutes).
			SetTimezone(sess.Timezone).
			SetConfirmToken(confirmToken)
		if sess.Title != "" {
			c = c.SetTitle(sess.Title)
		}
		if sess.MeetingURL != "" {
			c = c.SetMeetingURL(sess.MeetingURL)
		}

		next, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create recurring session: %w", err)
		}
		created = append(created, next)
	}
	return created, nil
}

// localWhen formats the session start in its own timezone for email and
// notification copy.
func (s *sessionService) localWhen(sess *repo.Session) string {
	loc, err := time.LoadLocation(sess.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return sess.ScheduledAt.In(loc).Format("Monday, January 2 at 3:04 PM (MST)")
}

func (s *sessionService) dispatchSessionEvent(ctx context.Context, sess *repo.Session, eventType, title, body, actionURL string) {
	_, _ = s.notifier.Dispatch(ctx, notification.DispatchRequest{
		UserID:    sess.ClientID,
		EventType: eventType,
		Title:     title,
		Body:      &body,
		Data: map[string]any{
			"sessionId":   sess.ID.String(),
			"scheduledAt": sess.ScheduledAt.Format(time.RFC3339),
		},
		ActionURL: actionURL,
	})
}
