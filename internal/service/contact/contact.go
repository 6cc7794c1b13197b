package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entmsg "github.com/evanshaw/cadence_backend/internal/repo/contactmessage"
	entuser "github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/evanshaw/cadence_backend/internal/service/notification"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	Name    string
	Email   string
	Subject string
	Body    string
	Kind    string // contact | intake
}

type ListRequest struct {
	Kind          *string
	UnhandledOnly bool
	Page          int
	PerPage       int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit stores a public contact or intake form post and pings the
	// coach. It is the only unauthenticated write in the system.
	Submit(ctx context.Context, req SubmitRequest) (*repo.ContactMessage, error)

	List(ctx context.Context, req ListRequest) ([]*repo.ContactMessage, error)
	GetByID(ctx context.Context, messageID uuid.UUID) (*repo.ContactMessage, error)
	MarkHandled(ctx context.Context, messageID uuid.UUID) error
}

type contactService struct {
	db       *repo.Client
	notifier notification.Service
}

func New(db *repo.Client, notifier notification.Service) Service {
	return &contactService{db: db, notifier: notifier}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *contactService) Submit(ctx context.Context, req SubmitRequest) (*repo.ContactMessage, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	body := strings.TrimSpace(req.Body)

	if name == "" || email == "" || body == "" {
		return nil, ErrMissingField
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	kind := entmsg.KindContact
	if req.Kind == string(entmsg.KindIntake) {
		kind = entmsg.KindIntake
	}

	c := s.db.ContactMessage.Create().
		SetName(name).
		SetEmail(email).
		SetBody(body).
		SetKind(kind)
	if subject := strings.TrimSpace(req.Subject); subject != "" {
		c = c.SetSubject(subject)
	}

	msg, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	s.notifyCoach(ctx, msg)
	return msg, nil
}

// notifyCoach pushes an intake notification to every coach account. A
// failure here never blocks the public form.
func (s *contactService) notifyCoach(ctx context.Context, msg *repo.ContactMessage) {
	coaches, err := s.db.User.Query().
		Where(entuser.RoleEQ(entuser.RoleCoach), entuser.IsActive(true)).
		All(ctx)
	if err != nil {
		return
	}

	title := "New contact message"
	if msg.Kind == entmsg.KindIntake {
		title = "New intake request"
	}
	body := fmt.Sprintf("From %s <%s>: %s", msg.Name, msg.Email, truncate(msg.Body, 200))

	for _, coach := range coaches {
		_, _ = s.notifier.Dispatch(ctx, notification.DispatchRequest{
			UserID:    coach.ID,
			EventType: "intakeReceived",
			Title:     title,
			Body:      &body,
			Data:      map[string]any{"messageId": msg.ID.String()},
		})
	}
}

func (s *contactService) List(ctx context.Context, req ListRequest) ([]*repo.ContactMessage, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.ContactMessage.Query()
	if req.Kind != nil {
		q = q.Where(entmsg.KindEQ(entmsg.Kind(*req.Kind)))
	}
	if req.UnhandledOnly {
		q = q.Where(entmsg.Handled(false))
	}

	msgs, err := q.
		Order(entmsg.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}

func (s *contactService) GetByID(ctx context.Context, messageID uuid.UUID) (*repo.ContactMessage, error) {
	msg, err := s.db.ContactMessage.Get(ctx, messageID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get contact message: %w", err)
	}
	return msg, nil
}

func (s *contactService) MarkHandled(ctx context.Context, messageID uuid.UUID) error {
	err := s.db.ContactMessage.UpdateOneID(messageID).
		SetHandled(true).
		Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("mark contact message handled: %w", err)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
