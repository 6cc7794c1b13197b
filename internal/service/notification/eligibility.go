package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PrefStore fetches the raw notification-preference blob for a client.
// A nil result means the client has never saved preferences (or has no
// profile); an error means the store itself failed.
type PrefStore interface {
	RawPrefs(ctx context.Context, clientID uuid.UUID) (*string, error)
}

const defaultStoreTimeout = 2 * time.Second

// Resolver decides, per event, whether each delivery channel fires.
// It is stateless and safe for concurrent use; every failure mode
// (missing profile, corrupt blob, store error, unknown event type)
// degrades to "send". A preference bug must never drop an
// account-critical email, so the bias is deliberate.
type Resolver struct {
	store   PrefStore
	timeout time.Duration
}

func NewResolver(store PrefStore) *Resolver {
	return &Resolver{store: store, timeout: defaultStoreTimeout}
}

// ShouldSendEmail resolves email eligibility for one event. accountUpdates
// events short-circuit to true without touching the store.
func (r *Resolver) ShouldSendEmail(ctx context.Context, clientID uuid.UUID, eventType string) bool {
	cat := Classify(eventType)
	if cat == CategoryAccountUpdates {
		return true
	}
	return EmailEligible(cat, r.loadPrefs(ctx, clientID))
}

// ShouldShowInApp resolves in-app eligibility for one event.
func (r *Resolver) ShouldShowInApp(ctx context.Context, clientID uuid.UUID, eventType string) bool {
	cat := Classify(eventType)
	if cat == CategoryAccountUpdates {
		return true
	}
	return InAppEligible(cat, r.loadPrefs(ctx, clientID))
}

// loadPrefs reads and parses the stored blob. Store failures of any kind
// (including timeout) surface as an empty set, which resolves to the
// all-defaults case downstream.
func (r *Resolver) loadPrefs(ctx context.Context, clientID uuid.UUID) PreferenceSet {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.store.RawPrefs(ctx, clientID)
	if err != nil {
		return PreferenceSet{}
	}
	return ParsePrefs(raw)
}
