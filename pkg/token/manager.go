package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/config"
)

// Manager signs and verifies the HMAC-signed access and refresh tokens
// used by the portal API.
type Manager struct {
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager creates a token manager from central config.
func NewManager(cfg *config.Config) (*Manager, error) {
	j := cfg.Auth.JWT
	if j.SecretKey == "" {
		return nil, ErrConfig{Msg: "secret key is empty"}
	}
	if len(j.SecretKey) < 32 {
		return nil, ErrConfig{Msg: "secret key must be at least 32 bytes"}
	}
	return &Manager{
		secret:     []byte(j.SecretKey),
		issuer:     j.Issuer,
		audience:   j.Audience,
		accessTTL:  time.Duration(j.AccessTTLMinutes) * time.Minute,
		refreshTTL: time.Duration(j.RefreshTTLDays) * 24 * time.Hour,
	}, nil
}

// IssueRequest describes the identity a token pair is minted for.
type IssueRequest struct {
	UserID    uuid.UUID
	Role      string
	SessionID *uuid.UUID
}

// IssueAccess mints a short-lived access token.
func (m *Manager) IssueAccess(req IssueRequest) (string, error) {
	return m.issue(TokenTypeAccess, req, m.accessTTL)
}

// IssueRefresh mints a long-lived refresh token.
func (m *Manager) IssueRefresh(req IssueRequest) (string, error) {
	return m.issue(TokenTypeRefresh, req, m.refreshTTL)
}

func (m *Manager) issue(typ TokenType, req IssueRequest, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Type:      typ,
		UserID:    req.UserID,
		Role:      req.Role,
		SessionID: req.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			Subject:   req.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", ErrInvalidToken{Err: err}
	}
	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
func (m *Manager) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if m.audience != "" {
		opts = append(opts, jwt.WithAudience(m.audience))
	}

	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}
	if !tok.Valid {
		return nil, ErrInvalidToken{Err: jwt.ErrTokenUnverifiable}
	}
	return claims, nil
}
