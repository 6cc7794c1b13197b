package email

import (
	"fmt"
	"strings"
	"time"
)

// SessionEmailData carries everything the session-related templates need.
// When and Timezone describe the session start in the client's own zone.
type SessionEmailData struct {
	ClientName     string
	ClientEmail    string
	When           time.Time
	Timezone       string
	ConfirmURL     string
	RescheduleNote string
	AppName        string
}

func (d SessionEmailData) localWhen() string {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil || d.Timezone == "" {
		loc = time.UTC
	}
	return d.When.In(loc).Format("Monday, January 2 at 3:04 PM (MST)")
}

func appNameOr(name string) string {
	if name == "" {
		return "Cadence"
	}
	return name
}

func greetingName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "there"
	}
	return name
}

// BuildSessionConfirmationEmail asks the client to confirm a newly
// scheduled session.
func BuildSessionConfirmationEmail(d SessionEmailData) Message {
	app := appNameOr(d.AppName)
	subject := fmt.Sprintf("Please confirm your session — %s", d.localWhen())

	textBody := fmt.Sprintf(`Hi %s,

A coaching session has been scheduled for you:

    %s

Please confirm the time by clicking the link below:
%s

If this time doesn't work, reply to this email and we'll find another slot.

— %s`,
		greetingName(d.ClientName), d.localWhen(), d.ConfirmURL, app)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Hi %s,</h2>
    <p>A coaching session has been scheduled for you:</p>
    <p style="font-size: 18px; font-weight: bold;">%s</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Confirm Session</a>
    </p>
    <p>If this time doesn't work, reply to this email and we'll find another slot.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">— %s</p>
</body>
</html>`,
		greetingName(d.ClientName), d.localWhen(), d.ConfirmURL, app)

	return Message{
		To:       []string{d.ClientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildSessionReminderEmail reminds the client of an upcoming confirmed session.
func BuildSessionReminderEmail(d SessionEmailData) Message {
	app := appNameOr(d.AppName)
	subject := fmt.Sprintf("Reminder: session %s", d.localWhen())

	textBody := fmt.Sprintf(`Hi %s,

This is a reminder of your upcoming coaching session:

    %s

See you then!

— %s`,
		greetingName(d.ClientName), d.localWhen(), app)

	return Message{
		To:       []string{d.ClientEmail},
		Subject:  subject,
		TextBody: textBody,
	}
}

// NotificationEmailData is the generic shape used for single-event emails
// (new resource, action item due, payment receipt, intake confirmation).
type NotificationEmailData struct {
	RecipientName  string
	RecipientEmail string
	Subject        string
	Headline       string
	Body           string
	ActionURL      string
	ActionLabel    string
	AppName        string
}

// BuildNotificationEmail renders the generic event template.
func BuildNotificationEmail(d NotificationEmailData) Message {
	app := appNameOr(d.AppName)

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\n%s\n", greetingName(d.RecipientName), d.Headline)
	if d.Body != "" {
		fmt.Fprintf(&text, "\n%s\n", d.Body)
	}
	if d.ActionURL != "" {
		fmt.Fprintf(&text, "\n%s:\n%s\n", actionLabelOr(d.ActionLabel), d.ActionURL)
	}
	fmt.Fprintf(&text, "\n— %s", app)

	var html strings.Builder
	html.WriteString(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	fmt.Fprintf(&html, "<h2>Hi %s,</h2>", greetingName(d.RecipientName))
	fmt.Fprintf(&html, "<p>%s</p>", d.Headline)
	if d.Body != "" {
		fmt.Fprintf(&html, "<p>%s</p>", d.Body)
	}
	if d.ActionURL != "" {
		fmt.Fprintf(&html, `<p style="text-align: center; margin: 30px 0;"><a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">%s</a></p>`,
			d.ActionURL, actionLabelOr(d.ActionLabel))
	}
	fmt.Fprintf(&html, `<p style="color: #6b7280; font-size: 14px; margin-top: 30px;">— %s</p></body></html>`, app)

	return Message{
		To:       []string{d.RecipientEmail},
		Subject:  d.Subject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}
}

func actionLabelOr(label string) string {
	if label == "" {
		return "View details"
	}
	return label
}

// DigestEmailData carries the weekly digest content.
type DigestEmailData struct {
	RecipientName    string
	RecipientEmail   string
	UpcomingSessions []string
	OpenActionItems  []string
	NewResources     []string
	PortalURL        string
	AppName          string
}

// BuildWeeklyDigestEmail renders the weekly summary email. Sections with no
// entries are omitted entirely.
func BuildWeeklyDigestEmail(d DigestEmailData) Message {
	app := appNameOr(d.AppName)

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\nHere's your week at a glance.\n", greetingName(d.RecipientName))

	writeSection := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&text, "\n%s\n", title)
		for _, it := range items {
			fmt.Fprintf(&text, "  - %s\n", it)
		}
	}
	writeSection("Upcoming sessions", d.UpcomingSessions)
	writeSection("Open action items", d.OpenActionItems)
	writeSection("New resources", d.NewResources)

	if d.PortalURL != "" {
		fmt.Fprintf(&text, "\nOpen your portal: %s\n", d.PortalURL)
	}
	fmt.Fprintf(&text, "\n— %s", app)

	return Message{
		To:       []string{d.RecipientEmail},
		Subject:  fmt.Sprintf("Your weekly %s digest", app),
		TextBody: text.String(),
	}
}

// BuildVerificationEmail sends the email-verification OTP code.
func BuildVerificationEmail(name, addr, code, appName string) Message {
	app := appNameOr(appName)
	return Message{
		To:      []string{addr},
		Subject: fmt.Sprintf("Your %s verification code", app),
		TextBody: fmt.Sprintf(`Hi %s,

Your verification code is:

    %s

It expires shortly. If you didn't request this, you can ignore this email.

— %s`, greetingName(name), code, app),
	}
}
