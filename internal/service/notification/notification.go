package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entprofile "github.com/evanshaw/cadence_backend/internal/repo/clientprofile"
	entnotif "github.com/evanshaw/cadence_backend/internal/repo/notification"
	"github.com/evanshaw/cadence_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type DispatchRequest struct {
	UserID    uuid.UUID
	EventType string
	Title     string
	Body      *string
	Data      map[string]any

	// ActionURL, when set, becomes the call-to-action link in the email.
	ActionURL string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Dispatch routes one business event through the eligibility resolver
	// and fires the eligible channels. It never returns an error for
	// channel failures; only the event classification is reported back.
	Dispatch(ctx context.Context, req DispatchRequest) (Category, error)

	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error)
	MarkRead(ctx context.Context, notifID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// GetPrefs returns the effective per-category settings (stored values
	// merged with defaults) for display in the portal.
	GetPrefs(ctx context.Context, userID uuid.UUID) (map[Category]ChannelPreference, error)
	UpdatePrefs(ctx context.Context, userID uuid.UUID, prefs PreferenceSet) (map[Category]ChannelPreference, error)

	Resolver() *Resolver
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db       *repo.Client
	resolver *Resolver
	mailer   *email.Client
}

func New(db *repo.Client, mailer *email.Client) Service {
	return &notificationService{
		db:       db,
		resolver: NewResolver(NewEntPrefStore(db)),
		mailer:   mailer,
	}
}

func (s *notificationService) Resolver() *Resolver {
	return s.resolver
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Notification.Query().
		Where(entnotif.UserID(userID))

	if unreadOnly {
		q = q.Where(entnotif.IsRead(false))
	}

	notifs, err := q.
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notifID, userID uuid.UUID) error {
	n, err := s.db.Notification.Query().
		Where(entnotif.ID(notifID), entnotif.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get notification: %w", err)
	}

	return s.db.Notification.UpdateOne(n).
		SetIsRead(true).
		Exec(ctx)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.db.Notification.Update().
		Where(entnotif.UserID(userID), entnotif.IsRead(false)).
		SetIsRead(true).
		Exec(ctx)
}

func (s *notificationService) GetPrefs(ctx context.Context, userID uuid.UUID) (map[Category]ChannelPreference, error) {
	raw, err := NewEntPrefStore(s.db).RawPrefs(ctx, userID)
	if err != nil {
		return nil, err
	}

	stored := ParsePrefs(raw)
	effective := make(map[Category]ChannelPreference, len(SuppressibleCategories))
	for _, cat := range SuppressibleCategories {
		if p, ok := stored[cat]; ok {
			effective[cat] = p
		} else {
			effective[cat] = DefaultPreference(cat)
		}
	}
	return effective, nil
}

func (s *notificationService) UpdatePrefs(ctx context.Context, userID uuid.UUID, prefs PreferenceSet) (map[Category]ChannelPreference, error) {
	// Only suppressible categories are persisted; anything else in the
	// request (accountUpdates included) is silently dropped.
	clean := make(map[string]ChannelPreference, len(prefs))
	for _, cat := range SuppressibleCategories {
		if p, ok := prefs[cat]; ok {
			clean[string(cat)] = p
		}
	}

	blob, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("encode notification prefs: %w", err)
	}
	raw := string(blob)

	existing, err := s.db.ClientProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("get client profile: %w", err)
		}
		_, cErr := s.db.ClientProfile.Create().
			SetUserID(userID).
			SetNotificationPrefs(raw).
			Save(ctx)
		if cErr != nil {
			return nil, fmt.Errorf("create client profile: %w", cErr)
		}
	} else {
		if _, uErr := s.db.ClientProfile.UpdateOne(existing).
			SetNotificationPrefs(raw).
			Save(ctx); uErr != nil {
			return nil, fmt.Errorf("update notification prefs: %w", uErr)
		}
	}

	return s.GetPrefs(ctx, userID)
}
