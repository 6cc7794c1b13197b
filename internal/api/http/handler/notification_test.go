package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/pkg/authorize"
	"github.com/evanshaw/cadence_backend/pkg/token"
)

// listApp mounts the notification list endpoint behind stubbed claims. The
// service is nil on purpose: the cases below must be rejected before any
// service call.
func listApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals(token.CtxKeyClaims, &token.Claims{
			UserID: uuid.New(),
			Role:   authorize.RoleClient,
		})
		return c.Next()
	})
	app.Get("/notifications", NewNotificationHandler(nil).List)
	return app
}

func TestNotificationList_MalformedQueryIsRejected(t *testing.T) {
	app := listApp()

	for _, query := range []string{"page=abc", "per_page=1.5", "unread_only=maybe"} {
		t.Run(query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/notifications?"+query, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
			}
		})
	}
}

func TestNotificationList_MissingClaimsIsUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Get("/notifications", NewNotificationHandler(nil).List)

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}
