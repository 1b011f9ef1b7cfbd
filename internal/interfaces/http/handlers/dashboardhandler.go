package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

type DashboardHandler struct {
	summaryUC dashboardSummaryUseCase
	logger    logger.Interface
}

func NewDashboardHandler(summaryUC dashboardSummaryUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		summaryUC: summaryUC,
		logger:    logger,
	}
}

// GetSummary handles GET /dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.summaryUC.Execute(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to get dashboard summary", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
