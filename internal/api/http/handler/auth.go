package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/evanshaw/cadence_backend/internal/service/auth"
	"github.com/evanshaw/cadence_backend/pkg/token"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound):
		return unauthorized(c)
	case errors.Is(err, auth.ErrUserInactive):
		return forbidden(c)
	case errors.Is(err, auth.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, auth.ErrCodeMismatch), errors.Is(err, auth.ErrWeakPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrTooManyAttempts):
		return tooManyRequests(c, err.Error())
	default:
		return internalError(c)
	}
}

type tokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
}

func toTokensResponse(t *auth.AuthTokens) tokensResponse {
	return tokensResponse{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		UserID:       t.User.ID.String(),
		Role:         string(t.User.Role),
	}
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, toTokensResponse(tokens))
}

// POST /auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().Body(&body); err != nil || body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, toTokensResponse(tokens))
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

// POST /auth/verify-email/send
func (h *AuthHandler) SendVerification(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	if err := h.svc.SendVerificationEmail(c.Context(), claims.UserID); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

// POST /auth/verify-email
func (h *AuthHandler) VerifyEmail(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := c.Bind().Body(&body); err != nil || body.Code == "" {
		return badRequest(c, "code is required")
	}

	if err := h.svc.VerifyEmail(c.Context(), claims.UserID, body.Code); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

// POST /auth/password/forgot
func (h *AuthHandler) ForgotPassword(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().Body(&body); err != nil || body.Email == "" {
		return badRequest(c, "email is required")
	}

	if err := h.svc.RequestPasswordReset(c.Context(), body.Email); err != nil {
		return mapAuthError(c, err)
	}
	// Always 204: the response must not leak whether the email exists.
	return noContent(c)
}

// POST /auth/password/reset
func (h *AuthHandler) ResetPassword(c fiber.Ctx) error {
	var body struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.Bind().Body(&body); err != nil || body.Token == "" || body.Password == "" {
		return badRequest(c, "token and password are required")
	}

	if err := h.svc.ResetPassword(c.Context(), body.Token, body.Password); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

// POST /auth/password/change
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	claims, claimsOK := token.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Current string `json:"current_password"`
		New     string `json:"new_password"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, auth.ChangePasswordRequest{
		Current: body.Current,
		New:     body.New,
	}); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}
