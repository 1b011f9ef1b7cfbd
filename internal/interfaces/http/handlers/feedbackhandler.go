package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/application/feedback/usecases"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

type FeedbackHandler struct {
	submitUC submitFeedbackUseCase
	listUC   listFeedbackUseCase
	logger   logger.Interface
}

func NewFeedbackHandler(submitUC submitFeedbackUseCase, listUC listFeedbackUseCase, logger logger.Interface) *FeedbackHandler {
	return &FeedbackHandler{
		submitUC: submitUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type SubmitFeedbackRequest struct {
	Message string `json:"message" validate:"required,max=5000"`
}

// SubmitFeedback handles POST /feedback
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitFeedbackRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitFeedbackCommand{
		UserID:      userID,
		Message:     req.Message,
		Preferences: middleware.CurrentPreferences(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Thanks for your feedback")
}

// ListFeedback handles GET /feedback
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListFeedbackQuery{
		UserID:   userID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
