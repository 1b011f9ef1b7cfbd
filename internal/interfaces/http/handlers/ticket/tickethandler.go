// Package ticket serves the Desk endpoints.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/application/ticket/usecases"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   createTicketUseCase
	getTicketUC      getTicketUseCase
	listTicketsUC    listTicketsUseCase
	changeStatusUC   changeStatusUseCase
	classifyTicketUC classifyTicketUseCase
	nextStatusesUC   nextStatusesUseCase
	insightsUC       ticketInsightsUseCase
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC createTicketUseCase,
	getTicketUC getTicketUseCase,
	listTicketsUC listTicketsUseCase,
	changeStatusUC changeStatusUseCase,
	classifyTicketUC classifyTicketUseCase,
	nextStatusesUC nextStatusesUseCase,
	insightsUC ticketInsightsUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		changeStatusUC:   changeStatusUC,
		classifyTicketUC: classifyTicketUC,
		nextStatusesUC:   nextStatusesUC,
		insightsUC:       insightsUC,
		logger:           logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID, middleware.CurrentPreferences(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	userID, ticketID, ok := h.userAndTicket(c)
	if !ok {
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), userID, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), parseListTicketsQuery(c, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateTicketStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	userID, ticketID, ok := h.userAndTicket(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ticket status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		UserID:      userID,
		TicketID:    ticketID,
		NewStatus:   req.Status,
		Preferences: middleware.CurrentPreferences(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// ClassifyTicket handles POST /tickets/:id/classify
func (h *TicketHandler) ClassifyTicket(c *gin.Context) {
	userID, ticketID, ok := h.userAndTicket(c)
	if !ok {
		return
	}

	result, err := h.classifyTicketUC.Execute(c.Request.Context(), usecases.ClassifyTicketCommand{
		UserID:      userID,
		TicketID:    ticketID,
		Preferences: middleware.CurrentPreferences(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket classified successfully", result)
}

// GetNextStatuses handles GET /tickets/:id/next-statuses
func (h *TicketHandler) GetNextStatuses(c *gin.Context) {
	userID, ticketID, ok := h.userAndTicket(c)
	if !ok {
		return
	}

	statuses, err := h.nextStatusesUC.Execute(c.Request.Context(), userID, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"next_statuses": statuses})
}

// GetInsights handles GET /tickets/insights
func (h *TicketHandler) GetInsights(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.insightsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) userAndTicket(c *gin.Context) (uint, uint, bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return userID, ticketID, true
}
