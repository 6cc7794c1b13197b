package resource

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entresource "github.com/evanshaw/cadence_backend/internal/repo/resource"
	entshare "github.com/evanshaw/cadence_backend/internal/repo/resourceshare"
	"github.com/evanshaw/cadence_backend/internal/service/notification"
	"github.com/evanshaw/cadence_backend/pkg/storage"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Title       string
	Description *string
	Kind        string
	ExternalURL *string
	Published   bool
}

type UpdateRequest struct {
	Title       *string
	Description *string
	ExternalURL *string
	Published   *bool
}

type UploadRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Resource, error)
	GetByID(ctx context.Context, resourceID uuid.UUID) (*repo.Resource, error)
	List(ctx context.Context, publishedOnly bool) ([]*repo.Resource, error)
	Update(ctx context.Context, resourceID uuid.UUID, req UpdateRequest) (*repo.Resource, error)
	Delete(ctx context.Context, resourceID uuid.UUID) error

	// AttachFile uploads the file to object storage and records its key.
	AttachFile(ctx context.Context, resourceID uuid.UUID, req UploadRequest) (*repo.Resource, error)

	// DownloadURL returns a presigned link for the resource's file. Clients
	// only get links for resources shared with them.
	DownloadURL(ctx context.Context, resourceID uuid.UUID, clientID *uuid.UUID) (string, error)

	Share(ctx context.Context, resourceID, clientID uuid.UUID) error
	Unshare(ctx context.Context, resourceID, clientID uuid.UUID) error
	ListForClient(ctx context.Context, clientID uuid.UUID) ([]*repo.Resource, error)

	// SharedSince lists resources shared with a client in the digest window.
	SharedSince(ctx context.Context, clientID uuid.UUID, since int) ([]*repo.Resource, error)
}

type resourceService struct {
	db       *repo.Client
	store    *storage.Client
	notifier notification.Service
}

func New(db *repo.Client, store *storage.Client, notifier notification.Service) Service {
	return &resourceService{db: db, store: store, notifier: notifier}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *resourceService) Create(ctx context.Context, req CreateRequest) (*repo.Resource, error) {
	kind := entresource.Kind(req.Kind)
	if err := entresource.KindValidator(kind); err != nil {
		return nil, ErrInvalidKind
	}

	c := s.db.Resource.Create().
		SetTitle(req.Title).
		SetKind(kind).
		SetPublished(req.Published)
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.ExternalURL != nil {
		c = c.SetExternalURL(*req.ExternalURL)
	}

	res, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return res, nil
}

func (s *resourceService) GetByID(ctx context.Context, resourceID uuid.UUID) (*repo.Resource, error) {
	res, err := s.db.Resource.Query().
		Where(entresource.ID(resourceID), entresource.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return res, nil
}

func (s *resourceService) List(ctx context.Context, publishedOnly bool) ([]*repo.Resource, error) {
	q := s.db.Resource.Query().
		Where(entresource.DeletedAtIsNil())
	if publishedOnly {
		q = q.Where(entresource.Published(true))
	}

	resources, err := q.
		Order(entresource.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

func (s *resourceService) Update(ctx context.Context, resourceID uuid.UUID, req UpdateRequest) (*repo.Resource, error) {
	res, err := s.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	u := s.db.Resource.UpdateOne(res)
	if req.Title != nil {
		u = u.SetTitle(*req.Title)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.ExternalURL != nil {
		u = u.SetExternalURL(*req.ExternalURL)
	}
	if req.Published != nil {
		u = u.SetPublished(*req.Published)
	}

	res, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update resource: %w", err)
	}
	return res, nil
}

func (s *resourceService) Delete(ctx context.Context, resourceID uuid.UUID) error {
	res, err := s.GetByID(ctx, resourceID)
	if err != nil {
		return err
	}

	if res.ObjectKey != "" {
		if err := s.store.Delete(ctx, res.ObjectKey); err != nil {
			return fmt.Errorf("delete resource file: %w", err)
		}
	}

	return s.db.Resource.UpdateOne(res).
		SetDeletedAt(nowUTC()).
		Exec(ctx)
}

func (s *resourceService) AttachFile(ctx context.Context, resourceID uuid.UUID, req UploadRequest) (*repo.Resource, error) {
	res, err := s.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("resources/%s/%s", resourceID, sanitizeFileName(req.FileName))
	if err := s.store.Upload(ctx, key, req.ContentType, req.Body, req.Size); err != nil {
		return nil, fmt.Errorf("upload resource file: %w", err)
	}

	// Replacing a file leaves the old object for the next cleanup run.
	res, err = s.db.Resource.UpdateOne(res).
		SetObjectKey(key).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record object key: %w", err)
	}
	return res, nil
}

func (s *resourceService) DownloadURL(ctx context.Context, resourceID uuid.UUID, clientID *uuid.UUID) (string, error) {
	res, err := s.GetByID(ctx, resourceID)
	if err != nil {
		return "", err
	}
	if res.ObjectKey == "" {
		return "", ErrNoFile
	}

	if clientID != nil {
		shared, err := s.db.ResourceShare.Query().
			Where(entshare.ResourceID(resourceID), entshare.ClientID(*clientID)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("check resource share: %w", err)
		}
		if !shared {
			return "", ErrNotShared
		}
	}

	url, err := s.store.PresignDownload(ctx, res.ObjectKey)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

func (s *resourceService) Share(ctx context.Context, resourceID, clientID uuid.UUID) error {
	res, err := s.GetByID(ctx, resourceID)
	if err != nil {
		return err
	}

	exists, err := s.db.ResourceShare.Query().
		Where(entshare.ResourceID(resourceID), entshare.ClientID(clientID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check resource share: %w", err)
	}
	if exists {
		return ErrAlreadyShared
	}

	if err := s.db.ResourceShare.Create().
		SetResourceID(resourceID).
		SetClientID(clientID).
		Exec(ctx); err != nil {
		return fmt.Errorf("create resource share: %w", err)
	}

	body := fmt.Sprintf("%q has been added to your library.", res.Title)
	_, _ = s.notifier.Dispatch(ctx, notification.DispatchRequest{
		UserID:    clientID,
		EventType: "resourceShared",
		Title:     "New resource for you",
		Body:      &body,
		Data:      map[string]any{"resourceId": resourceID.String()},
	})

	return nil
}

func (s *resourceService) Unshare(ctx context.Context, resourceID, clientID uuid.UUID) error {
	n, err := s.db.ResourceShare.Delete().
		Where(entshare.ResourceID(resourceID), entshare.ClientID(clientID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete resource share: %w", err)
	}
	if n == 0 {
		return ErrNotShared
	}
	return nil
}

func (s *resourceService) ListForClient(ctx context.Context, clientID uuid.UUID) ([]*repo.Resource, error) {
	shares, err := s.db.ResourceShare.Query().
		Where(entshare.ClientID(clientID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resource shares: %w", err)
	}
	if len(shares) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(shares))
	for _, sh := range shares {
		ids = append(ids, sh.ResourceID)
	}

	// Shares are explicit grants, so unpublished resources still show
	// for the clients they were shared with.
	resources, err := s.db.Resource.Query().
		Where(entresource.IDIn(ids...), entresource.DeletedAtIsNil()).
		Order(entresource.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shared resources: %w", err)
	}
	return resources, nil
}

func (s *resourceService) SharedSince(ctx context.Context, clientID uuid.UUID, sinceDays int) ([]*repo.Resource, error) {
	shares, err := s.db.ResourceShare.Query().
		Where(
			entshare.ClientID(clientID),
			entshare.CreatedAtGTE(nowUTC().AddDate(0, 0, -sinceDays)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent shares: %w", err)
	}
	if len(shares) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(shares))
	for _, sh := range shares {
		ids = append(ids, sh.ResourceID)
	}

	resources, err := s.db.Resource.Query().
		Where(entresource.IDIn(ids...), entresource.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recently shared resources: %w", err)
	}
	return resources, nil
}

func nowUTC() time.Time { return time.Now().UTC() }

// sanitizeFileName strips any path components and collapses spaces so
// the object key stays predictable.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == "/" {
		return "file"
	}
	return name
}
