package token

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/config"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWT: config.JWTConfig{
				SecretKey:        secret,
				Issuer:           "cadence-test",
				Audience:         "cadence-portal",
				AccessTTLMinutes: 15,
				RefreshTTLDays:   30,
			},
		},
	}
}

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewManager_RejectsEmptySecret(t *testing.T) {
	_, err := NewManager(testConfig(""))
	if err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestNewManager_RejectsShortSecret(t *testing.T) {
	_, err := NewManager(testConfig("too-short"))
	if err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	mgr, err := NewManager(testConfig(testSecret))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	raw, err := mgr.IssueAccess(IssueRequest{
		UserID:    userID,
		Role:      "client",
		SessionID: &sessionID,
	})
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	claims, err := mgr.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "client" {
		t.Errorf("Role = %q, want %q", claims.Role, "client")
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %s", claims.SessionID, sessionID)
	}
	if claims.IsExpired() {
		t.Error("fresh token reports expired")
	}
}

func TestRefreshTokenType(t *testing.T) {
	mgr, err := NewManager(testConfig(testSecret))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	raw, err := mgr.IssueRefresh(IssueRequest{
		UserID: uuid.Must(uuid.NewV7()),
		Role:   "coach",
	})
	if err != nil {
		t.Fatalf("IssueRefresh failed: %v", err)
	}

	claims, err := mgr.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
	if claims.SessionID != nil {
		t.Errorf("SessionID = %v, want nil", claims.SessionID)
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	mgr, err := NewManager(testConfig(testSecret))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	other, err := NewManager(testConfig("fedcba9876543210fedcba9876543210"))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	raw, err := mgr.IssueAccess(IssueRequest{UserID: uuid.Must(uuid.NewV7()), Role: "client"})
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	if _, err := other.Verify(raw); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerify_RejectsTamperedToken(t *testing.T) {
	mgr, err := NewManager(testConfig(testSecret))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	raw, err := mgr.IssueAccess(IssueRequest{UserID: uuid.Must(uuid.NewV7()), Role: "client"})
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	if _, err := mgr.Verify(tampered); err == nil {
		t.Error("expected verification to fail for tampered signature")
	}
}

func TestVerify_RejectsGarbage(t *testing.T) {
	mgr, err := NewManager(testConfig(testSecret))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if _, err := mgr.Verify("not-a-token"); err == nil {
		t.Error("expected verification to fail for garbage input")
	}
}
