package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/conseccomms/conseccomms/internal/domain/setting"
)

const defaultSettingsTTL = 12 * time.Hour

// SettingsSessionStore is an in-process store of each session's settings.
// Entries expire with the session; a restart simply reloads from the
// database on the next request.
type SettingsSessionStore struct {
	cache *gocache.Cache
}

func NewSettingsSessionStore(ttl time.Duration) *SettingsSessionStore {
	if ttl <= 0 {
		ttl = defaultSettingsTTL
	}
	return &SettingsSessionStore{
		cache: gocache.New(ttl, ttl*2),
	}
}

func (s *SettingsSessionStore) Get(sessionID string) (setting.Settings, bool) {
	v, found := s.cache.Get(sessionID)
	if !found {
		return setting.Settings{}, false
	}
	settings, ok := v.(setting.Settings)
	return settings, ok
}

func (s *SettingsSessionStore) Set(sessionID string, settings setting.Settings) {
	s.cache.Set(sessionID, settings, gocache.DefaultExpiration)
}

func (s *SettingsSessionStore) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}

// Len reports the number of cached sessions, expired ones included until
// the janitor runs.
func (s *SettingsSessionStore) Len() int {
	return s.cache.ItemCount()
}
