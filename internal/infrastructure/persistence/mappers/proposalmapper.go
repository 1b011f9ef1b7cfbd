package mappers

import (
	"fmt"

	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	vo "github.com/conseccomms/conseccomms/internal/domain/proposal/valueobjects"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type ProposalMapper interface {
	ToEntity(model *models.ProposalModel) (*proposal.Proposal, error)
	ToModel(entity *proposal.Proposal) *models.ProposalModel
	ToEntities(models []*models.ProposalModel) ([]*proposal.Proposal, error)
}

type ProposalMapperImpl struct{}

func NewProposalMapper() ProposalMapper {
	return &ProposalMapperImpl{}
}

// ToEntity expects LineItems to be preloaded in position order.
func (m *ProposalMapperImpl) ToEntity(model *models.ProposalModel) (*proposal.Proposal, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewProposalStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map proposal status: %w", err)
	}

	items := mapper.MapSlice(model.LineItems, func(li models.ProposalLineItemModel) proposal.LineItem {
		return proposal.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      li.Amount,
		}
	})

	return proposal.ReconstructProposal(
		model.ID,
		model.UserID,
		model.ProposalNumber,
		proposal.Details{
			Title:       model.Title,
			ClientName:  model.ClientName,
			ClientEmail: model.ClientEmail,
			Description: model.Description,
			ValidUntil:  model.ValidUntil,
		},
		status,
		model.TotalAmount,
		items,
		model.CreatedAt,
		model.UpdatedAt,
		model.SentAt,
	)
}

func (m *ProposalMapperImpl) ToModel(entity *proposal.Proposal) *models.ProposalModel {
	if entity == nil {
		return nil
	}
	model := &models.ProposalModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		ProposalNumber: entity.ProposalNumber(),
		Title:          entity.Title(),
		ClientName:     entity.ClientName(),
		ClientEmail:    entity.ClientEmail(),
		Description:    entity.Description(),
		Status:         entity.Status().String(),
		TotalAmount:    entity.TotalAmount(),
		ValidUntil:     entity.ValidUntil(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
		SentAt:         entity.SentAt(),
	}
	model.LineItems = LineItemsToModels(entity.ID(), entity.LineItems())
	return model
}

func (m *ProposalMapperImpl) ToEntities(modelList []*models.ProposalModel) ([]*proposal.Proposal, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}

func LineItemsToModels(proposalID uint, items []proposal.LineItem) []models.ProposalLineItemModel {
	out := make([]models.ProposalLineItemModel, 0, len(items))
	for i, item := range items {
		out = append(out, models.ProposalLineItemModel{
			ProposalID:  proposalID,
			Position:    i,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}
	return out
}
