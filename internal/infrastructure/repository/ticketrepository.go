package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/mappers"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
	"github.com/conseccomms/conseccomms/internal/shared/db"
	apperrors "github.com/conseccomms/conseccomms/internal/shared/errors"
)

// allowedTicketOrderByFields is the ORDER BY whitelist.
var allowedTicketOrderByFields = map[string]bool{
	"id":            true,
	"title":         true,
	"status":        true,
	"priority":      true,
	"ai_category":   true,
	"ai_confidence": true,
	"created_at":    true,
	"updated_at":    true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return t.SetID(model.ID)
}

// Update writes every mutable column, zero values included, scoped to the
// owning user. The row must still hold the status the ticket was loaded
// with; otherwise a conflict is returned and nothing is written.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Scopes(db.OwnedBy(model.UserID)).
		Where("id = ? AND status = ?", model.ID, t.StoredStatus().String()).
		Select("title", "description", "status", "priority", "ai_category", "ai_sub_category",
			"ai_sentiment", "ai_confidence", "ai_suggested_response", "updated_at", "resolved_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("ticket has been modified by another request or not found")
	}
	t.MarkStored()
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, userID, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		First(&model, ticketID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) List(ctx context.Context, userID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Scopes(db.OwnedBy(userID))

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != "" {
		query = query.Where("ai_category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	order := filter.OrderClause(allowedTicketOrderByFields)
	if order == "" {
		order = "created_at DESC, id DESC"
	}

	var modelList []*models.TicketModel
	if err := query.Order(order).Offset(filter.Offset()).Limit(filter.Limit()).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) ListAll(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	var modelList []*models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}
