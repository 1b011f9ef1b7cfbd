package ticket

import (
	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/application/ticket/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

func (r *CreateTicketRequest) ToCommand(userID uint, prefs setting.NotificationPreferences) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Preferences: prefs,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved"`
}

func parseListTicketsQuery(c *gin.Context, userID uint) usecases.ListTicketsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListTicketsQuery{
		UserID:    userID,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}
