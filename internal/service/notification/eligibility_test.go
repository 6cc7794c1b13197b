package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakePrefStore serves canned blobs and records whether it was queried.
type fakePrefStore struct {
	raw     *string
	err     error
	delay   time.Duration
	queried bool
}

func (f *fakePrefStore) RawPrefs(ctx context.Context, _ uuid.UUID) (*string, error) {
	f.queried = true
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.raw, f.err
}

func TestResolverShouldSendEmail(t *testing.T) {
	clientID := uuid.New()

	tests := []struct {
		name      string
		store     *fakePrefStore
		eventType string
		want      bool
	}{
		{
			name:      "no stored prefs defaults to send",
			store:     &fakePrefStore{},
			eventType: "sessionReminder",
			want:      true,
		},
		{
			name:      "explicit opt-out suppresses",
			store:     &fakePrefStore{raw: strptr(`{"sessionReminders":{"inApp":true,"email":false}}`)},
			eventType: "sessionReminder",
			want:      false,
		},
		{
			name:      "opt-out in one category leaves others on",
			store:     &fakePrefStore{raw: strptr(`{"sessionReminders":{"inApp":true,"email":false}}`)},
			eventType: "resourceShared",
			want:      true,
		},
		{
			name:      "corrupt blob defaults to send",
			store:     &fakePrefStore{raw: strptr(`{{{`)},
			eventType: "weeklyDigest",
			want:      true,
		},
		{
			name:      "store error defaults to send",
			store:     &fakePrefStore{err: errors.New("connection refused")},
			eventType: "actionItemDueSoon",
			want:      true,
		},
		{
			name:      "unknown event type always sends",
			store:     &fakePrefStore{raw: strptr(`{"sessionReminders":{"inApp":false,"email":false}}`)},
			eventType: "mysteryEvent",
			want:      true,
		},
		{
			name:      "account event sends despite hostile blob",
			store:     &fakePrefStore{raw: strptr(`{"accountUpdates":{"inApp":false,"email":false}}`)},
			eventType: "passwordReset",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.store)
			if got := r.ShouldSendEmail(context.Background(), clientID, tt.eventType); got != tt.want {
				t.Errorf("ShouldSendEmail(%q) = %v, want %v", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestResolverAccountUpdatesSkipsStore(t *testing.T) {
	store := &fakePrefStore{err: errors.New("store must not be called")}
	r := NewResolver(store)

	if !r.ShouldSendEmail(context.Background(), uuid.New(), "emailVerification") {
		t.Error("ShouldSendEmail for account event = false, want true")
	}
	if !r.ShouldShowInApp(context.Background(), uuid.New(), "paymentReceived") {
		t.Error("ShouldShowInApp for account event = false, want true")
	}
	if store.queried {
		t.Error("resolver queried the pref store for an account event")
	}
}

func TestResolverStoreTimeoutFailsOpen(t *testing.T) {
	store := &fakePrefStore{
		raw:   strptr(`{"weeklyDigest":{"inApp":false,"email":false}}`),
		delay: 200 * time.Millisecond,
	}
	r := NewResolver(store)
	r.timeout = 10 * time.Millisecond

	if !r.ShouldSendEmail(context.Background(), uuid.New(), "weeklyDigest") {
		t.Error("slow store should fail open, got suppressed")
	}
}

func TestResolverShouldShowInApp(t *testing.T) {
	clientID := uuid.New()

	tests := []struct {
		name      string
		raw       *string
		eventType string
		want      bool
	}{
		{"defaults on", nil, "actionItemAssigned", true},
		{"explicit in-app off", strptr(`{"actionItemDue":{"inApp":false,"email":true}}`), "actionItemOverdue", false},
		{"email off leaves in-app on", strptr(`{"newResources":{"inApp":true,"email":false}}`), "resourceUploaded", true},
		{"account event ignores prefs", strptr(`{"sessionReminders":{"inApp":false,"email":false}}`), "invoiceIssued", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(&fakePrefStore{raw: tt.raw})
			if got := r.ShouldShowInApp(context.Background(), clientID, tt.eventType); got != tt.want {
				t.Errorf("ShouldShowInApp(%q) = %v, want %v", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestResolverIsDeterministic(t *testing.T) {
	store := &fakePrefStore{raw: strptr(`{"sessionReminders":{"inApp":true,"email":false}}`)}
	r := NewResolver(store)
	clientID := uuid.New()

	first := r.ShouldSendEmail(context.Background(), clientID, "sessionReminder")
	for i := 0; i < 10; i++ {
		if got := r.ShouldSendEmail(context.Background(), clientID, "sessionReminder"); got != first {
			t.Fatalf("resolution changed on repeat call %d: %v then %v", i, first, got)
		}
	}
}
