package usecases

import (
	"context"
	"time"

	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type SaveSettingsCommand struct {
	UserID    uint
	SessionID string
	Settings  setting.Settings
}

// PushTargetValidator checks a user's desktop push URL against the push
// services the server supports.
type PushTargetValidator interface {
	ValidateTarget(target string) error
}

type SaveSettingsUseCase struct {
	repo      setting.Repository
	store     setting.SessionStore
	pushCheck PushTargetValidator
	logger    logger.Interface
}

// NewSaveSettingsUseCase accepts a nil pushCheck when push delivery is off;
// push URLs are then only checked for URL syntax.
func NewSaveSettingsUseCase(
	repo setting.Repository,
	store setting.SessionStore,
	pushCheck PushTargetValidator,
	logger logger.Interface,
) *SaveSettingsUseCase {
	return &SaveSettingsUseCase{
		repo:      repo,
		store:     store,
		pushCheck: pushCheck,
		logger:    logger,
	}
}

// Execute persists the full settings document and refreshes the cached
// copy for the calling session.
func (uc *SaveSettingsUseCase) Execute(ctx context.Context, cmd SaveSettingsCommand) (setting.Settings, error) {
	if err := cmd.Settings.Validate(); err != nil {
		return setting.Settings{}, errors.NewValidationError(err.Error())
	}
	if target := cmd.Settings.Notifications.PushURL; target != "" && uc.pushCheck != nil {
		if err := uc.pushCheck.ValidateTarget(target); err != nil {
			return setting.Settings{}, errors.NewValidationError(err.Error())
		}
	}

	record := &setting.UserSettings{
		UserID:    cmd.UserID,
		Settings:  cmd.Settings,
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Upsert(ctx, record); err != nil {
		uc.logger.Errorw("failed to save settings", "user_id", cmd.UserID, "error", err)
		return setting.Settings{}, errors.NewInternalError("failed to save settings")
	}

	if cmd.SessionID != "" {
		uc.store.Set(cmd.SessionID, cmd.Settings)
	}
	uc.logger.Infow("settings saved", "user_id", cmd.UserID)
	return cmd.Settings, nil
}

// ReloadSettingsUseCase drops the cached copy so the next read comes from
// storage.
type ReloadSettingsUseCase struct {
	store setting.SessionStore
	get   *GetSettingsUseCase
}

func NewReloadSettingsUseCase(store setting.SessionStore, get *GetSettingsUseCase) *ReloadSettingsUseCase {
	return &ReloadSettingsUseCase{
		store: store,
		get:   get,
	}
}

func (uc *ReloadSettingsUseCase) Execute(ctx context.Context, q GetSettingsQuery) (setting.Settings, error) {
	if q.SessionID != "" {
		uc.store.Delete(q.SessionID)
	}
	return uc.get.Execute(ctx, q)
}
