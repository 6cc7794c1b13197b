package notification

import (
	"context"
	"fmt"
	"log/slog"

	entuser "github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/evanshaw/cadence_backend/pkg/email"
)

// Dispatch classifies the event, writes an in-app row when the client
// has that channel on, and sends an email when the client has email on.
// Channel failures never surface to the caller of the business operation
// that produced the event: they are logged and the dispatch continues.
func (s *notificationService) Dispatch(ctx context.Context, req DispatchRequest) (Category, error) {
	cat := Classify(req.EventType)

	showInApp := s.resolver.ShouldShowInApp(ctx, req.UserID, req.EventType)
	sendEmail := s.resolver.ShouldSendEmail(ctx, req.UserID, req.EventType)

	var emailed bool
	if sendEmail {
		emailed = s.sendEventEmail(ctx, req)
	}

	if showInApp {
		create := s.db.Notification.Create().
			SetUserID(req.UserID).
			SetEventType(req.EventType).
			SetCategory(string(cat)).
			SetTitle(req.Title).
			SetIsEmailed(emailed)
		if req.Body != nil {
			create = create.SetBody(*req.Body)
		}
		if req.Data != nil {
			create = create.SetData(req.Data)
		}
		if err := create.Exec(ctx); err != nil {
			slog.Error("failed to store in-app notification",
				slog.String("event_type", req.EventType),
				slog.String("user_id", req.UserID.String()),
				slog.Any("error", err))
		}
	}

	return cat, nil
}

func (s *notificationService) sendEventEmail(ctx context.Context, req DispatchRequest) bool {
	u, err := s.db.User.Query().
		Where(entuser.ID(req.UserID)).
		Only(ctx)
	if err != nil {
		slog.Error("failed to load user for notification email",
			slog.String("user_id", req.UserID.String()),
			slog.Any("error", err))
		return false
	}

	body := ""
	if req.Body != nil {
		body = *req.Body
	}

	msg := email.BuildNotificationEmail(email.NotificationEmailData{
		RecipientName:  u.FirstName,
		RecipientEmail: u.Email,
		Subject:        req.Title,
		Headline:       req.Title,
		Body:           body,
		ActionURL:      req.ActionURL,
		AppName:        s.mailer.Config().AppName,
	})

	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.Error(fmt.Sprintf("failed to send %s email", req.EventType),
			slog.String("user_id", req.UserID.String()),
			slog.Any("error", err))
		return false
	}
	return true
}
