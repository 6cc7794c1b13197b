package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/evanshaw/cadence_backend/config"
	"github.com/evanshaw/cadence_backend/internal/repo"
	entitem "github.com/evanshaw/cadence_backend/internal/repo/actionitem"
	entsession "github.com/evanshaw/cadence_backend/internal/repo/session"
	entuser "github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/evanshaw/cadence_backend/internal/service/actionitem"
	"github.com/evanshaw/cadence_backend/internal/service/notification"
	"github.com/evanshaw/cadence_backend/internal/service/resource"
	"github.com/evanshaw/cadence_backend/internal/service/session"
	"github.com/evanshaw/cadence_backend/pkg/email"
)

// SubjectNotify is the NATS subject carrying queued notification events.
const SubjectNotify = "cadence.notify"

// NotifyEvent is the wire shape published to SubjectNotify.
type NotifyEvent struct {
	UserID    uuid.UUID      `json:"user_id"`
	EventType string         `json:"event_type"`
	Title     string         `json:"title"`
	Body      string         `json:"body,omitempty"`
	ActionURL string         `json:"action_url,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// PublishNotify queues a notification event for async dispatch.
func PublishNotify(nc *nats.Conn, ev NotifyEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode notify event: %w", err)
	}
	return nc.Publish(SubjectNotify, payload)
}

// WorkerModule registers the background workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	NC            *nats.Conn
	DB            *repo.Client
	RDB           *redis.Client
	Mailer        *email.Client
	NotifSvc      notification.Service
	SessionSvc    session.Service
	ActionItemSvc actionitem.Service
	ResourceSvc   resource.Service
}

func RegisterWorkers(p WorkerParams) {
	ctx, cancel := context.WithCancel(context.Background())

	p.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := startNotificationWorker(p.NC, p.NotifSvc); err != nil {
				cancel()
				return err
			}
			go runReminderWorker(ctx, p)
			go runDigestWorker(ctx, p)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			// NATS drain handled by ProvideNatsClient.
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// notification_worker: drains queued events into the dispatch pipeline
// ---------------------------------------------------------------------------

func startNotificationWorker(nc *nats.Conn, notifSvc notification.Service) error {
	_, err := nc.Subscribe(SubjectNotify, func(msg *nats.Msg) {
		var ev NotifyEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("notification_worker: bad event payload", "err", err)
			return
		}

		req := notification.DispatchRequest{
			UserID:    ev.UserID,
			EventType: ev.EventType,
			Title:     ev.Title,
			Data:      ev.Data,
			ActionURL: ev.ActionURL,
		}
		if ev.Body != "" {
			req.Body = &ev.Body
		}

		if _, err := notifSvc.Dispatch(context.Background(), req); err != nil {
			slog.Warn("notification_worker: dispatch failed",
				"event_type", ev.EventType, "err", err)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", SubjectNotify, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// reminder_worker: session reminders and action-item nudges
// ---------------------------------------------------------------------------

func runReminderWorker(ctx context.Context, p WorkerParams) {
	tick := time.Duration(p.Cfg.Notifications.ReminderTickMinutes) * time.Minute
	if tick <= 0 {
		tick = 15 * time.Minute
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			remindSessions(ctx, p)
			remindActionItems(ctx, p)
		}
	}
}

func remindSessions(ctx context.Context, p WorkerParams) {
	lead := time.Duration(p.Cfg.Notifications.ReminderLeadHours) * time.Hour
	if lead <= 0 {
		lead = 24 * time.Hour
	}

	due, err := p.SessionSvc.DueForReminder(ctx, lead)
	if err != nil {
		slog.Error("reminder_worker: query sessions failed", "err", err)
		return
	}

	for _, sess := range due {
		loc, err := time.LoadLocation(sess.Timezone)
		if err != nil {
			loc = time.UTC
		}
		when := sess.ScheduledAt.In(loc).Format("Monday, January 2 at 3:04 PM (MST)")

		ev := NotifyEvent{
			UserID:    sess.ClientID,
			EventType: "sessionReminder",
			Title:     "Upcoming session reminder",
			Body:      fmt.Sprintf("Your session is coming up on %s.", when),
			Data: map[string]any{
				"sessionId":   sess.ID.String(),
				"scheduledAt": sess.ScheduledAt.Format(time.RFC3339),
			},
		}
		if sess.MeetingURL != "" {
			ev.ActionURL = sess.MeetingURL
		}

		if err := PublishNotify(p.NC, ev); err != nil {
			slog.Error("reminder_worker: publish failed", "session_id", sess.ID, "err", err)
			continue
		}

		// Marking first would lose the reminder if publish failed; this
		// order risks a duplicate instead, which is the better failure.
		if err := p.SessionSvc.MarkReminderSent(ctx, sess.ID); err != nil {
			slog.Error("reminder_worker: mark sent failed", "session_id", sess.ID, "err", err)
		}
	}
}

func remindActionItems(ctx context.Context, p WorkerParams) {
	items, err := p.ActionItemSvc.DueSoon(ctx, 24*time.Hour)
	if err != nil {
		slog.Error("reminder_worker: query action items failed", "err", err)
		return
	}

	for _, item := range items {
		// At most one nudge per item per day.
		key := fmt.Sprintf("nudge:action_item:%s", item.ID)
		set, err := p.RDB.SetNX(ctx, key, "1", 24*time.Hour).Result()
		if err != nil || !set {
			continue
		}

		ev := NotifyEvent{
			UserID:    item.ClientID,
			EventType: "actionItemDueSoon",
			Title:     "Action item due soon",
			Body:      fmt.Sprintf("%q is due %s.", item.Title, item.DueOn.Format("January 2")),
			Data:      map[string]any{"actionItemId": item.ID.String()},
		}
		if err := PublishNotify(p.NC, ev); err != nil {
			slog.Error("reminder_worker: publish failed", "action_item_id", item.ID, "err", err)
			p.RDB.Del(ctx, key)
		}
	}
}

// ---------------------------------------------------------------------------
// digest_worker: weekly summary per client
// ---------------------------------------------------------------------------

func runDigestWorker(ctx context.Context, p WorkerParams) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now().UTC()
			if int(now.Weekday()) != p.Cfg.Notifications.DigestWeekday ||
				now.Hour() != p.Cfg.Notifications.DigestHourUTC {
				continue
			}
			// The hourly tick can only land once in the send slot, but a
			// restart inside the slot must not double-send.
			key := fmt.Sprintf("digest:sent:%s", now.Format("2006-01-02"))
			set, err := p.RDB.SetNX(ctx, key, "1", 48*time.Hour).Result()
			if err != nil || !set {
				continue
			}
			sendWeeklyDigests(ctx, p)
		}
	}
}

func sendWeeklyDigests(ctx context.Context, p WorkerParams) {
	clients, err := p.DB.User.Query().
		Where(entuser.RoleEQ(entuser.RoleClient), entuser.IsActive(true)).
		All(ctx)
	if err != nil {
		slog.Error("digest_worker: list clients failed", "err", err)
		return
	}

	resolver := p.NotifSvc.Resolver()
	sent := 0
	for _, client := range clients {
		if !resolver.ShouldSendEmail(ctx, client.ID, "weeklyDigest") &&
			!resolver.ShouldShowInApp(ctx, client.ID, "weeklyDigest") {
			continue
		}
		if err := sendClientDigest(ctx, p, client); err != nil {
			slog.Error("digest_worker: digest failed", "client_id", client.ID, "err", err)
			continue
		}
		sent++
	}
	slog.Info("digest_worker: weekly digests processed", "clients", len(clients), "sent", sent)
}

func sendClientDigest(ctx context.Context, p WorkerParams, client *repo.User) error {
	now := time.Now().UTC()

	loc, err := time.LoadLocation(client.Timezone)
	if err != nil {
		loc = time.UTC
	}

	sessions, err := p.DB.Session.Query().
		Where(
			entsession.ClientID(client.ID),
			entsession.StatusIn(entsession.StatusPendingConfirmation, entsession.StatusConfirmed),
			entsession.ScheduledAtGT(now),
			entsession.ScheduledAtLTE(now.AddDate(0, 0, 7)),
		).
		Order(entsession.ByScheduledAt()).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query upcoming sessions: %w", err)
	}

	items, err := p.DB.ActionItem.Query().
		Where(entitem.ClientID(client.ID), entitem.StatusEQ(entitem.StatusOpen)).
		Order(entitem.ByDueOn()).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query open action items: %w", err)
	}

	shared, err := p.ResourceSvc.SharedSince(ctx, client.ID, 7)
	if err != nil {
		return fmt.Errorf("query shared resources: %w", err)
	}

	// An empty week means no digest; silence beats noise.
	if len(sessions) == 0 && len(items) == 0 && len(shared) == 0 {
		return nil
	}

	resolver := p.NotifSvc.Resolver()
	cfg := p.Mailer.Config()

	if resolver.ShouldSendEmail(ctx, client.ID, "weeklyDigest") {
		d := email.DigestEmailData{
			RecipientName:  client.FirstName,
			RecipientEmail: client.Email,
			PortalURL:      cfg.BaseURL,
			AppName:        cfg.AppName,
		}
		for _, sess := range sessions {
			line := sess.ScheduledAt.In(loc).Format("Mon Jan 2, 3:04 PM")
			if sess.Title != "" {
				line = sess.Title + " — " + line
			}
			d.UpcomingSessions = append(d.UpcomingSessions, line)
		}
		for _, item := range items {
			line := item.Title
			if !item.DueOn.IsZero() {
				line += " (due " + item.DueOn.Format("Jan 2") + ")"
			}
			d.OpenActionItems = append(d.OpenActionItems, line)
		}
		for _, res := range shared {
			d.NewResources = append(d.NewResources, res.Title)
		}

		if err := p.Mailer.Send(ctx, email.BuildWeeklyDigestEmail(d)); err != nil {
			slog.Error("digest_worker: email failed", "client_id", client.ID, "err", err)
		}
	}

	if resolver.ShouldShowInApp(ctx, client.ID, "weeklyDigest") {
		body := fmt.Sprintf("%d upcoming sessions, %d open action items, %d new resources.",
			len(sessions), len(items), len(shared))
		err := p.DB.Notification.Create().
			SetUserID(client.ID).
			SetEventType("weeklyDigest").
			SetCategory(string(notification.CategoryWeeklyDigest)).
			SetTitle("Your week ahead").
			SetBody(body).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("store digest notification: %w", err)
		}
	}

	return nil
}
