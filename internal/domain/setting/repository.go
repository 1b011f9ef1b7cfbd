package setting

import "context"

type Repository interface {
	// Get returns ErrSettingsNotFound when the user never saved settings.
	Get(ctx context.Context, userID uint) (*UserSettings, error)
	Upsert(ctx context.Context, settings *UserSettings) error
}

// SessionStore caches a user's settings for the lifetime of one session.
type SessionStore interface {
	Get(sessionID string) (Settings, bool)
	Set(sessionID string, s Settings)
	Delete(sessionID string)
}
