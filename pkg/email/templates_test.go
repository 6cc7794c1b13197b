package email

import (
	"strings"
	"testing"
	"time"
)

func TestBuildSessionConfirmationEmail_LocalTime(t *testing.T) {
	when := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)
	msg := BuildSessionConfirmationEmail(SessionEmailData{
		ClientName:  "Dana",
		ClientEmail: "dana@example.com",
		When:        when,
		Timezone:    "America/Chicago",
		ConfirmURL:  "https://portal.example.com/sessions/confirm/abc",
		AppName:     "Cadence",
	})

	if len(msg.To) != 1 || msg.To[0] != "dana@example.com" {
		t.Errorf("To = %v", msg.To)
	}
	// 15:00 UTC is 10:00 CDT on that date.
	if !strings.Contains(msg.Subject, "10:00 AM") {
		t.Errorf("subject does not show local time: %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "https://portal.example.com/sessions/confirm/abc") {
		t.Error("text body missing confirm URL")
	}
	if !strings.Contains(msg.HTMLBody, "Confirm Session") {
		t.Error("html body missing confirm button")
	}
}

func TestBuildSessionConfirmationEmail_BadZoneFallsBackToUTC(t *testing.T) {
	when := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)
	msg := BuildSessionConfirmationEmail(SessionEmailData{
		ClientEmail: "dana@example.com",
		When:        when,
		Timezone:    "Mars/Olympus_Mons",
	})
	if !strings.Contains(msg.Subject, "3:00 PM") {
		t.Errorf("expected UTC fallback in subject, got %q", msg.Subject)
	}
	// Empty name still greets politely.
	if !strings.Contains(msg.TextBody, "Hi there,") {
		t.Error("expected fallback greeting for empty name")
	}
}

func TestBuildNotificationEmail_OptionalParts(t *testing.T) {
	full := BuildNotificationEmail(NotificationEmailData{
		RecipientName:  "Dana",
		RecipientEmail: "dana@example.com",
		Subject:        "New resource shared with you",
		Headline:       "New resource shared with you",
		Body:           "Quarterly goals worksheet",
		ActionURL:      "https://portal.example.com/library",
		ActionLabel:    "Open library",
	})
	if !strings.Contains(full.TextBody, "Quarterly goals worksheet") {
		t.Error("text body missing body line")
	}
	if !strings.Contains(full.TextBody, "Open library:") {
		t.Error("text body missing custom action label")
	}
	if !strings.Contains(full.HTMLBody, `href="https://portal.example.com/library"`) {
		t.Error("html body missing action link")
	}

	bare := BuildNotificationEmail(NotificationEmailData{
		RecipientEmail: "dana@example.com",
		Subject:        "Heads up",
		Headline:       "Heads up",
	})
	if strings.Contains(bare.TextBody, "View details") {
		t.Error("bare message should not render an action section")
	}
	if strings.Contains(bare.HTMLBody, "<a href") {
		t.Error("bare message should not render a link")
	}
}

func TestBuildNotificationEmail_DefaultActionLabel(t *testing.T) {
	msg := BuildNotificationEmail(NotificationEmailData{
		RecipientEmail: "dana@example.com",
		Subject:        "Invoice INV-2026-0001",
		Headline:       "You have a new invoice",
		ActionURL:      "https://pay.example.com/x",
	})
	if !strings.Contains(msg.TextBody, "View details:") {
		t.Errorf("expected default action label, got:\n%s", msg.TextBody)
	}
}

func TestBuildWeeklyDigestEmail_OmitsEmptySections(t *testing.T) {
	msg := BuildWeeklyDigestEmail(DigestEmailData{
		RecipientName:    "Dana",
		RecipientEmail:   "dana@example.com",
		UpcomingSessions: []string{"Tuesday, March 10 at 10:00 AM (CDT)"},
		PortalURL:        "https://portal.example.com",
		AppName:          "Cadence",
	})

	if !strings.Contains(msg.TextBody, "Upcoming sessions") {
		t.Error("missing sessions section")
	}
	if strings.Contains(msg.TextBody, "Open action items") {
		t.Error("empty action items section should be omitted")
	}
	if strings.Contains(msg.TextBody, "New resources") {
		t.Error("empty resources section should be omitted")
	}
	if !strings.Contains(msg.TextBody, "https://portal.example.com") {
		t.Error("missing portal link")
	}
	if msg.Subject != "Your weekly Cadence digest" {
		t.Errorf("Subject = %q", msg.Subject)
	}
}

func TestBuildVerificationEmail(t *testing.T) {
	msg := BuildVerificationEmail("Dana", "dana@example.com", "482913", "")
	if !strings.Contains(msg.TextBody, "482913") {
		t.Error("missing verification code")
	}
	// Empty app name falls back to the product default.
	if !strings.Contains(msg.Subject, "Cadence") {
		t.Errorf("Subject = %q", msg.Subject)
	}
}
