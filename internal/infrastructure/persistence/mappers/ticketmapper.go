package mappers

import (
	"fmt"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	vo "github.com/conseccomms/conseccomms/internal/domain/ticket/valueobjects"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket status: %w", err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket priority: %w", err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Title,
		model.Description,
		status,
		priority,
		model.AICategory,
		model.AISubCategory,
		insight.Sentiment(model.AISentiment),
		model.AIConfidence,
		model.AISuggestedResponse,
		model.CreatedAt,
		model.UpdatedAt,
		model.ResolvedAt,
	)
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}
	return &models.TicketModel{
		ID:                  entity.ID(),
		UserID:              entity.UserID(),
		Title:               entity.Title(),
		Description:         entity.Description(),
		Status:              entity.Status().String(),
		Priority:            entity.Priority().String(),
		AICategory:          entity.AICategory(),
		AISubCategory:       entity.AISubCategory(),
		AISentiment:         entity.AISentiment().String(),
		AIConfidence:        entity.AIConfidence(),
		AISuggestedResponse: entity.AISuggestedResponse(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
		ResolvedAt:          entity.ResolvedAt(),
	}
}

func (m *TicketMapperImpl) ToEntities(modelList []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
