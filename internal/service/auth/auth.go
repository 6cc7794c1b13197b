package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entuser "github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/evanshaw/cadence_backend/internal/service/notification"
	"github.com/evanshaw/cadence_backend/pkg/token"
	"github.com/evanshaw/cadence_backend/pkg/util/otp"
	"github.com/evanshaw/cadence_backend/pkg/util/password"
)

const (
	sessionTTL     = 30 * 24 * time.Hour
	verifyCodeTTL  = 15 * time.Minute
	resetTokenTTL  = 30 * time.Minute
	maxCodeRetries = 5
)

func redisKeySession(sessionID string) string { return "session:" + sessionID }
func redisKeyVerify(userID string) string     { return "verify:" + userID }
func redisKeyVerifyTries(userID string) string {
	return "verify:attempts:" + userID
}
func redisKeyReset(tok string) string { return "pwreset:" + tok }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string
	Password string
}

type ChangePasswordRequest struct {
	Current string
	New     string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	User         *repo.User
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// SessionActive reports whether the session behind an access token
	// is still live in Redis. Logout kills it immediately.
	SessionActive(ctx context.Context, sessionID uuid.UUID) (bool, error)

	SendVerificationEmail(ctx context.Context, userID uuid.UUID) error
	VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error

	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db       *repo.Client
	rdb      *redis.Client
	tokens   *token.Manager
	notifier notification.Service
	baseURL  string
}

func New(db *repo.Client, rdb *redis.Client, tokens *token.Manager, notifier notification.Service, baseURL string) Service {
	return &authService{
		db:       db,
		rdb:      rdb,
		tokens:   tokens,
		notifier: notifier,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.db.User.Query().
		Where(entuser.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Burn a hash comparison anyway so the response time does
			// not reveal whether the email exists.
			password.Match("$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}
	if !password.Match(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, u)
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil || claims.Type != token.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	u, err := s.db.User.Get(ctx, claims.UserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}

	// Sliding session: refresh extends the Redis TTL.
	s.rdb.Expire(ctx, sessionKey, sessionTTL)

	access, err := s.tokens.IssueAccess(token.IssueRequest{
		UserID:    u.ID,
		Role:      string(u.Role),
		SessionID: claims.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refreshToken,
		User:         u,
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

func (s *authService) SessionActive(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	n, err := s.rdb.Exists(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists session: %w", err)
	}
	return n > 0, nil
}

func (s *authService) SendVerificationEmail(ctx context.Context, userID uuid.UUID) error {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate verification code: %w", err)
	}

	if err := s.rdb.Set(ctx, redisKeyVerify(userID.String()), otp.Hash(code), verifyCodeTTL).Err(); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	s.rdb.Set(ctx, redisKeyVerifyTries(userID.String()), "0", verifyCodeTTL)

	body := fmt.Sprintf("Your verification code is %s. It expires in 15 minutes.", code)
	_, err = s.notifier.Dispatch(ctx, notification.DispatchRequest{
		UserID:    u.ID,
		EventType: "emailVerification",
		Title:     "Verify your email address",
		Body:      &body,
	})
	return err
}

func (s *authService) VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error {
	key := redisKeyVerify(userID.String())
	hash, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrInvalidToken
	} else if err != nil {
		return fmt.Errorf("redis get verification code: %w", err)
	}

	tries, _ := s.rdb.Get(ctx, redisKeyVerifyTries(userID.String())).Int()
	if tries >= maxCodeRetries {
		s.rdb.Del(ctx, key, redisKeyVerifyTries(userID.String()))
		return ErrTooManyAttempts
	}

	if otp.Verify(hash, code) != nil {
		s.rdb.Incr(ctx, redisKeyVerifyTries(userID.String()))
		return ErrCodeMismatch
	}

	s.rdb.Del(ctx, key, redisKeyVerifyTries(userID.String()))

	return s.db.User.UpdateOneID(userID).
		SetEmailVerifiedAt(time.Now().UTC()).
		Exec(ctx)
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.db.User.Query().
		Where(entuser.EmailEQ(email), entuser.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Do not reveal whether the address exists.
			return nil
		}
		return fmt.Errorf("get user by email: %w", err)
	}

	resetToken, err := otp.GenerateHex(32)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.rdb.Set(ctx, redisKeyReset(resetToken), u.ID.String(), resetTokenTTL).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	body := "We received a request to reset your password. The link expires in 30 minutes. If you did not ask for this, you can ignore this email."
	_, err = s.notifier.Dispatch(ctx, notification.DispatchRequest{
		UserID:    u.ID,
		EventType: "passwordReset",
		Title:     "Reset your password",
		Body:      &body,
		ActionURL: fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, resetToken),
	})
	return err
}

func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	key := redisKeyReset(resetToken)
	userIDStr, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrInvalidToken
	} else if err != nil {
		return fmt.Errorf("redis get reset token: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return ErrInvalidToken
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.User.UpdateOneID(userID).
		SetPasswordHash(hash).
		Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	// Single-use token.
	s.rdb.Del(ctx, key)
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	if len(req.New) < 8 {
		return ErrWeakPassword
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	if !password.Match(u.PasswordHash, req.Current) {
		return ErrInvalidCredentials
	}

	hash, err := password.Hash(req.New)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.db.User.UpdateOne(u).
		SetPasswordHash(hash).
		Exec(ctx)
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())
	sessionKey := redisKeySession(sessionID.String())

	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	issue := token.IssueRequest{
		UserID:    u.ID,
		Role:      string(u.Role),
		SessionID: &sessionID,
	}

	access, err := s.tokens.IssueAccess(issue)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(issue)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         u,
	}, nil
}
