package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	settingUsecases "github.com/conseccomms/conseccomms/internal/application/setting/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/shared/constants"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

// SettingsLoader is satisfied by *settingUsecases.GetSettingsUseCase.
type SettingsLoader interface {
	Execute(ctx context.Context, q settingUsecases.GetSettingsQuery) (setting.Settings, error)
}

type SettingsMiddleware struct {
	loader SettingsLoader
	logger logger.Interface
}

func NewSettingsMiddleware(loader SettingsLoader, logger logger.Interface) *SettingsMiddleware {
	return &SettingsMiddleware{
		loader: loader,
		logger: logger,
	}
}

// Load puts the acting user's settings on the context. It must run after
// RequireAuth. A failed load falls back to the defaults so that gated
// side effects keep working.
func (m *SettingsMiddleware) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(constants.ContextKeyUserID)
		if userID == 0 {
			c.Next()
			return
		}

		s, err := m.loader.Execute(c.Request.Context(), settingUsecases.GetSettingsQuery{
			UserID:    userID,
			SessionID: c.GetString(constants.ContextKeySessionID),
		})
		if err != nil {
			m.logger.Warnw("failed to load user settings, using defaults", "user_id", userID, "error", err)
			s = setting.Defaults()
		}
		c.Set(constants.ContextKeySettings, s)

		c.Next()
	}
}

// CurrentSettings returns the settings placed by Load, or the defaults.
func CurrentSettings(c *gin.Context) setting.Settings {
	if v, ok := c.Get(constants.ContextKeySettings); ok {
		if s, ok := v.(setting.Settings); ok {
			return s
		}
	}
	return setting.Defaults()
}

// CurrentPreferences is shorthand for CurrentSettings(c).Notifications.
func CurrentPreferences(c *gin.Context) setting.NotificationPreferences {
	return CurrentSettings(c).Notifications
}
