package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entprofile "github.com/evanshaw/cadence_backend/internal/repo/clientprofile"
	entuser "github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/evanshaw/cadence_backend/pkg/util/password"
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
	Page    int
	PerPage int
	Search  string // matches name or email
	Active  *bool
}

type CreateRequest struct {
	Email     string
	FirstName string
	LastName  string
	Timezone  string
	Password  string // empty means generate one
	Company   *string
	Goals     *string
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Timezone  *string
	Company   *string
	Goals     *string
	IsActive  *bool
}

type Detail struct {
	User    *repo.User
	Profile *repo.ClientProfile
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Detail, error)
	GetByID(ctx context.Context, clientID uuid.UUID) (*Detail, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*Detail], error)
	Update(ctx context.Context, clientID uuid.UUID, req UpdateRequest) (*Detail, error)
	MarkOnboarded(ctx context.Context, clientID uuid.UUID) error
}

type clientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &clientService{db: db}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *clientService) Create(ctx context.Context, req CreateRequest) (*Detail, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, ErrInvalidZone
		}
	}

	exists, err := s.db.User.Query().
		Where(entuser.EmailEQ(email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	pw := req.Password
	if pw == "" {
		pw = password.Generate(16)
	}
	hash, err := password.Hash(pw)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	uc := tx.User.Create().
		SetEmail(email).
		SetPasswordHash(hash).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetRole(entuser.RoleClient)
	if req.Timezone != "" {
		uc = uc.SetTimezone(req.Timezone)
	}
	u, err := uc.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create user: %w", err)
	}

	pc := tx.ClientProfile.Create().SetUserID(u.ID)
	if req.Company != nil {
		pc = pc.SetNillableCompany(req.Company)
	}
	if req.Goals != nil {
		pc = pc.SetNillableGoals(req.Goals)
	}
	profile, err := pc.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create client profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &Detail{User: u, Profile: profile}, nil
}

func (s *clientService) GetByID(ctx context.Context, clientID uuid.UUID) (*Detail, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(clientID), entuser.RoleEQ(entuser.RoleClient)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}

	profile, err := s.db.ClientProfile.Query().
		Where(entprofile.UserID(clientID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get client profile: %w", err)
	}

	return &Detail{User: u, Profile: profile}, nil
}

func (s *clientService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*Detail], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.User.Query().
		Where(entuser.RoleEQ(entuser.RoleClient))

	if req.Active != nil {
		q = q.Where(entuser.IsActive(*req.Active))
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entuser.Or(
			entuser.FirstNameContainsFold(search),
			entuser.LastNameContainsFold(search),
			entuser.EmailContainsFold(search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	profiles, err := s.db.ClientProfile.Query().
		Where(entprofile.UserIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list client profiles: %w", err)
	}
	byUser := make(map[uuid.UUID]*repo.ClientProfile, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = p
	}

	data := make([]*Detail, 0, len(users))
	for _, u := range users {
		data = append(data, &Detail{User: u, Profile: byUser[u.ID]})
	}

	totalPages := (total + perPage - 1) / perPage
	return &PaginatedResult[*Detail]{
		Data:       data,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (s *clientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateRequest) (*Detail, error) {
	detail, err := s.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, ErrInvalidZone
		}
	}

	uu := s.db.User.UpdateOne(detail.User)
	if req.FirstName != nil {
		uu = uu.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		uu = uu.SetLastName(*req.LastName)
	}
	if req.Timezone != nil {
		uu = uu.SetTimezone(*req.Timezone)
	}
	if req.IsActive != nil {
		uu = uu.SetIsActive(*req.IsActive)
	}
	u, err := uu.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	detail.User = u

	if req.Company != nil || req.Goals != nil {
		if detail.Profile == nil {
			pc := s.db.ClientProfile.Create().SetUserID(clientID)
			if req.Company != nil {
				pc = pc.SetNillableCompany(req.Company)
			}
			if req.Goals != nil {
				pc = pc.SetNillableGoals(req.Goals)
			}
			profile, err := pc.Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("create client profile: %w", err)
			}
			detail.Profile = profile
		} else {
			pu := s.db.ClientProfile.UpdateOne(detail.Profile)
			if req.Company != nil {
				pu = pu.SetNillableCompany(req.Company)
			}
			if req.Goals != nil {
				pu = pu.SetNillableGoals(req.Goals)
			}
			profile, err := pu.Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("update client profile: %w", err)
			}
			detail.Profile = profile
		}
	}

	return detail, nil
}

func (s *clientService) MarkOnboarded(ctx context.Context, clientID uuid.UUID) error {
	// Already-onboarded profiles are left alone; the call is idempotent.
	_, err := s.db.ClientProfile.Update().
		Where(entprofile.UserID(clientID), entprofile.OnboardedAtIsNil()).
		SetOnboardedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark onboarded: %w", err)
	}
	return nil
}
