package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entprofile "github.com/evanshaw/cadence_backend/internal/repo/clientprofile"
)

// entPrefStore reads the raw preference blob off the client profile row.
type entPrefStore struct {
	db *repo.Client
}

func NewEntPrefStore(db *repo.Client) PrefStore {
	return &entPrefStore{db: db}
}

// RawPrefs returns nil (not an error) when the client has no profile or
// the profile has no stored preferences; both mean "use defaults".
func (s *entPrefStore) RawPrefs(ctx context.Context, clientID uuid.UUID) (*string, error) {
	profile, err := s.db.ClientProfile.Query().
		Where(entprofile.UserID(clientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client profile: %w", err)
	}
	return profile.NotificationPrefs, nil
}
