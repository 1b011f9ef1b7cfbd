package proposal

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/application/proposal/usecases"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

type LineItemRequest struct {
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

type ProposalRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	ClientName  string            `json:"client_name" validate:"required,max=200"`
	ClientEmail string            `json:"client_email" validate:"omitempty,email"`
	Description string            `json:"description" validate:"max=20000"`
	ValidUntil  *time.Time        `json:"valid_until"`
	LineItems   []LineItemRequest `json:"line_items" validate:"max=100,dive"`
}

func (r *ProposalRequest) details() usecases.DetailsInput {
	return usecases.DetailsInput{
		Title:       r.Title,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		Description: r.Description,
		ValidUntil:  r.ValidUntil,
	}
}

// lineItems keeps nil distinct from empty: an update without line_items
// leaves the stored items alone.
func (r *ProposalRequest) lineItems() []usecases.LineItemInput {
	if r.LineItems == nil {
		return nil
	}
	items := make([]usecases.LineItemInput, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, usecases.LineItemInput{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		})
	}
	return items
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent viewed approved rejected expired"`
}

func parseListProposalsQuery(c *gin.Context, userID uint) usecases.ListProposalsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListProposalsQuery{
		UserID:    userID,
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}
