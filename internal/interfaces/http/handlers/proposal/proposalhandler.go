// Package proposal serves the Quotes endpoints.
package proposal

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/application/proposal/usecases"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

type ProposalHandler struct {
	createUC   createProposalUseCase
	getUC      getProposalUseCase
	listUC     listProposalsUseCase
	updateUC   updateProposalUseCase
	statusUC   changeStatusUseCase
	deleteUC   deleteProposalUseCase
	insightsUC proposalInsightsUseCase
	logger     logger.Interface
}

func NewProposalHandler(
	createUC createProposalUseCase,
	getUC getProposalUseCase,
	listUC listProposalsUseCase,
	updateUC updateProposalUseCase,
	statusUC changeStatusUseCase,
	deleteUC deleteProposalUseCase,
	insightsUC proposalInsightsUseCase,
	logger logger.Interface,
) *ProposalHandler {
	return &ProposalHandler{
		createUC:   createUC,
		getUC:      getUC,
		listUC:     listUC,
		updateUC:   updateUC,
		statusUC:   statusUC,
		deleteUC:   deleteUC,
		insightsUC: insightsUC,
		logger:     logger,
	}
}

// CreateProposal handles POST /proposals
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ProposalRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create proposal", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateProposalCommand{
		UserID:    userID,
		Details:   req.details(),
		LineItems: req.lineItems(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Proposal created successfully")
}

// GetProposal handles GET /proposals/:id
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	userID, proposalID, ok := userAndProposal(c)
	if !ok {
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), userID, proposalID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProposals handles GET /proposals
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), parseListProposalsQuery(c, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateProposal handles PUT /proposals/:id
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	userID, proposalID, ok := userAndProposal(c)
	if !ok {
		return
	}

	var req ProposalRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateProposalCommand{
		UserID:     userID,
		ProposalID: proposalID,
		Details:    req.details(),
		LineItems:  req.lineItems(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Proposal updated successfully", result)
}

// UpdateProposalStatus handles PATCH /proposals/:id/status
func (h *ProposalHandler) UpdateProposalStatus(c *gin.Context) {
	userID, proposalID, ok := userAndProposal(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		UserID:      userID,
		ProposalID:  proposalID,
		NewStatus:   req.Status,
		Preferences: middleware.CurrentPreferences(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Proposal status updated successfully", result)
}

// DeleteProposal handles DELETE /proposals/:id
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	userID, proposalID, ok := userAndProposal(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, proposalID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetInsights handles GET /proposals/:id/insights
func (h *ProposalHandler) GetInsights(c *gin.Context) {
	userID, proposalID, ok := userAndProposal(c)
	if !ok {
		return
	}

	result, err := h.insightsUC.Execute(c.Request.Context(), userID, proposalID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func userAndProposal(c *gin.Context) (uint, uint, bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	proposalID, err := utils.ParseIDParam(c, "id", "proposal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return userID, proposalID, true
}
