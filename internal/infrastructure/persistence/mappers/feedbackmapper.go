package mappers

import (
	"github.com/conseccomms/conseccomms/internal/domain/feedback"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
)

func FeedbackToModel(entity *feedback.Feedback) *models.FeedbackModel {
	return &models.FeedbackModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		Message:    entity.Message(),
		Category:   entity.Category(),
		Sentiment:  entity.Sentiment(),
		Confidence: entity.Confidence(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func FeedbackToEntity(model *models.FeedbackModel) (*feedback.Feedback, error) {
	return feedback.ReconstructFeedback(model.ID, model.UserID, model.Message, model.Category, model.Sentiment, model.Confidence, model.CreatedAt)
}
