package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/domain/setting"
)

type mockSettingRepository struct {
	GetFunc    func(ctx context.Context, userID uint) (*setting.UserSettings, error)
	UpsertFunc func(ctx context.Context, s *setting.UserSettings) error

	getCalls int
}

func (m *mockSettingRepository) Get(ctx context.Context, userID uint) (*setting.UserSettings, error) {
	m.getCalls++
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, setting.ErrSettingsNotFound
}

func (m *mockSettingRepository) Upsert(ctx context.Context, s *setting.UserSettings) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, s)
	}
	return nil
}

type memorySessionStore struct {
	items map[string]setting.Settings
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{items: make(map[string]setting.Settings)}
}

func (m *memorySessionStore) Get(sessionID string) (setting.Settings, bool) {
	s, ok := m.items[sessionID]
	return s, ok
}

func (m *memorySessionStore) Set(sessionID string, s setting.Settings) {
	m.items[sessionID] = s
}

func (m *memorySessionStore) Delete(sessionID string) {
	delete(m.items, sessionID)
}

type mockPushTargetValidator struct {
	err     error
	checked []string
}

func (m *mockPushTargetValidator) ValidateTarget(target string) error {
	m.checked = append(m.checked, target)
	return m.err
}
