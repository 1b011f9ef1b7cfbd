package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/application/setting/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

// SettingHandler serves the per-user preferences. Reads go through the
// session cache; writes refresh it.
type SettingHandler struct {
	getUC    getSettingsUseCase
	saveUC   saveSettingsUseCase
	reloadUC reloadSettingsUseCase
	logger   logger.Interface
}

func NewSettingHandler(
	getUC getSettingsUseCase,
	saveUC saveSettingsUseCase,
	reloadUC reloadSettingsUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getUC:    getUC,
		saveUC:   saveUC,
		reloadUC: reloadUC,
		logger:   logger,
	}
}

// GetSettings handles GET /settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	q, err := settingsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SaveSettings handles PUT /settings
func (h *SettingHandler) SaveSettings(c *gin.Context) {
	q, err := settingsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req setting.Settings
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.saveUC.Execute(c.Request.Context(), usecases.SaveSettingsCommand{
		UserID:    q.UserID,
		SessionID: q.SessionID,
		Settings:  req,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings saved successfully", result)
}

// ReloadSettings handles POST /settings/reload
func (h *SettingHandler) ReloadSettings(c *gin.Context) {
	q, err := settingsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reloadUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings reloaded", result)
}

func settingsQuery(c *gin.Context) (usecases.GetSettingsQuery, error) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		return usecases.GetSettingsQuery{}, err
	}
	return usecases.GetSettingsQuery{
		UserID:    userID,
		SessionID: utils.GetSessionIDFromContext(c),
	}, nil
}
