package usecases

import (
	"context"
	"errors"

	"github.com/conseccomms/conseccomms/internal/domain/setting"
	apperrors "github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type GetSettingsQuery struct {
	UserID    uint
	SessionID string
}

// GetSettingsUseCase loads a user's settings once per session. Later calls
// for the same session are served from the session store.
type GetSettingsUseCase struct {
	repo   setting.Repository
	store  setting.SessionStore
	logger logger.Interface
}

func NewGetSettingsUseCase(repo setting.Repository, store setting.SessionStore, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, q GetSettingsQuery) (setting.Settings, error) {
	if q.SessionID != "" {
		if s, ok := uc.store.Get(q.SessionID); ok {
			return s, nil
		}
	}

	stored, err := uc.repo.Get(ctx, q.UserID)
	var s setting.Settings
	switch {
	case errors.Is(err, setting.ErrSettingsNotFound):
		s = setting.Defaults()
	case err != nil:
		uc.logger.Errorw("failed to load settings", "user_id", q.UserID, "error", err)
		return setting.Settings{}, apperrors.NewInternalError("failed to load settings")
	default:
		s = stored.Settings
	}

	if q.SessionID != "" {
		uc.store.Set(q.SessionID, s)
	}
	return s, nil
}
