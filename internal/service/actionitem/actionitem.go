package actionitem

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entitem "github.com/evanshaw/cadence_backend/internal/repo/actionitem"
	"github.com/evanshaw/cadence_backend/internal/service/notification"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	ClientID  *uuid.UUID
	SessionID *uuid.UUID
	Status    *string
	DueBefore *time.Time
}

type CreateRequest struct {
	ClientID  uuid.UUID
	SessionID *uuid.UUID
	Title     string
	Notes     *string
	DueOn     *time.Time
}

type UpdateRequest struct {
	Title *string
	Notes *string
	DueOn *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.ActionItem, error)
	GetByID(ctx context.Context, itemID uuid.UUID) (*repo.ActionItem, error)
	List(ctx context.Context, req ListRequest) ([]*repo.ActionItem, error)
	Update(ctx context.Context, itemID uuid.UUID, req UpdateRequest) (*repo.ActionItem, error)
	MarkDone(ctx context.Context, itemID, clientID uuid.UUID) (*repo.ActionItem, error)
	Reopen(ctx context.Context, itemID uuid.UUID) (*repo.ActionItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error

	// DueSoon returns open items whose due date falls within the window.
	// The reminder worker uses it to nudge clients once per day.
	DueSoon(ctx context.Context, within time.Duration) ([]*repo.ActionItem, error)
	Overdue(ctx context.Context) ([]*repo.ActionItem, error)
}

type actionItemService struct {
	db       *repo.Client
	notifier notification.Service
}

func New(db *repo.Client, notifier notification.Service) Service {
	return &actionItemService{db: db, notifier: notifier}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *actionItemService) Create(ctx context.Context, req CreateRequest) (*repo.ActionItem, error) {
	if req.DueOn != nil && req.DueOn.Before(time.Now().UTC().Truncate(24*time.Hour)) {
		return nil, ErrInvalidDue
	}

	c := s.db.ActionItem.Create().
		SetClientID(req.ClientID).
		SetTitle(req.Title)
	if req.SessionID != nil {
		c = c.SetSessionID(*req.SessionID)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}
	if req.DueOn != nil {
		c = c.SetDueOn(req.DueOn.UTC())
	}

	item, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create action item: %w", err)
	}

	body := item.Title
	if req.DueOn != nil {
		body = fmt.Sprintf("%s (due %s)", item.Title, req.DueOn.Format("January 2"))
	}
	_, _ = s.notifier.Dispatch(ctx, notification.DispatchRequest{
		UserID:    req.ClientID,
		EventType: "actionItemAssigned",
		Title:     "New action item",
		Body:      &body,
		Data:      map[string]any{"actionItemId": item.ID.String()},
	})

	return item, nil
}

func (s *actionItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*repo.ActionItem, error) {
	item, err := s.db.ActionItem.Get(ctx, itemID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get action item: %w", err)
	}
	return item, nil
}

func (s *actionItemService) List(ctx context.Context, req ListRequest) ([]*repo.ActionItem, error) {
	q := s.db.ActionItem.Query()
	if req.ClientID != nil {
		q = q.Where(entitem.ClientID(*req.ClientID))
	}
	if req.SessionID != nil {
		q = q.Where(entitem.SessionID(*req.SessionID))
	}
	if req.Status != nil {
		q = q.Where(entitem.StatusEQ(entitem.Status(*req.Status)))
	}
	if req.DueBefore != nil {
		q = q.Where(entitem.DueOnLT(req.DueBefore.UTC()))
	}

	items, err := q.
		Order(entitem.ByDueOn(sql.OrderAsc(), sql.OrderNullsLast()), entitem.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}
	return items, nil
}

func (s *actionItemService) Update(ctx context.Context, itemID uuid.UUID, req UpdateRequest) (*repo.ActionItem, error) {
	item, err := s.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	u := s.db.ActionItem.UpdateOne(item)
	if req.Title != nil {
		u = u.SetTitle(*req.Title)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}
	if req.DueOn != nil {
		u = u.SetDueOn(req.DueOn.UTC())
	}

	item, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update action item: %w", err)
	}
	return item, nil
}

func (s *actionItemService) MarkDone(ctx context.Context, itemID, clientID uuid.UUID) (*repo.ActionItem, error) {
	item, err := s.db.ActionItem.Query().
		Where(entitem.ID(itemID), entitem.ClientID(clientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get action item: %w", err)
	}
	if item.Status == entitem.StatusDone {
		return item, nil
	}

	item, err = s.db.ActionItem.UpdateOne(item).
		SetStatus(entitem.StatusDone).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark action item done: %w", err)
	}
	return item, nil
}

func (s *actionItemService) Reopen(ctx context.Context, itemID uuid.UUID) (*repo.ActionItem, error) {
	item, err := s.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item, err = s.db.ActionItem.UpdateOne(item).
		SetStatus(entitem.StatusOpen).
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reopen action item: %w", err)
	}
	return item, nil
}

func (s *actionItemService) Delete(ctx context.Context, itemID uuid.UUID) error {
	err := s.db.ActionItem.DeleteOneID(itemID).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete action item: %w", err)
	}
	return nil
}

func (s *actionItemService) DueSoon(ctx context.Context, within time.Duration) ([]*repo.ActionItem, error) {
	now := time.Now().UTC()

	items, err := s.db.ActionItem.Query().
		Where(
			entitem.StatusEQ(entitem.StatusOpen),
			entitem.DueOnGTE(now),
			entitem.DueOnLTE(now.Add(within)),
		).
		Order(entitem.ByDueOn(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query action items due soon: %w", err)
	}
	return items, nil
}

func (s *actionItemService) Overdue(ctx context.Context) ([]*repo.ActionItem, error) {
	items, err := s.db.ActionItem.Query().
		Where(
			entitem.StatusEQ(entitem.StatusOpen),
			entitem.DueOnLT(time.Now().UTC()),
		).
		Order(entitem.ByDueOn(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query overdue action items: %w", err)
	}
	return items, nil
}
