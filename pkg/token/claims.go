package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the app-facing token payload.
type Claims struct {
	Type      TokenType  `json:"typ"`
	UserID    uuid.UUID  `json:"uid"`
	Role      string     `json:"role"`
	SessionID *uuid.UUID `json:"sid,omitempty"`

	jwt.RegisteredClaims
}

func (c *Claims) IsExpired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(c.ExpiresAt.Time)
}
