package mappers

import (
	"fmt"

	"github.com/conseccomms/conseccomms/internal/domain/notification"
	vo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification category: %w", err)
	}
	notificationType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification type: %w", err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification priority: %w", err)
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.UserID,
		category,
		notificationType,
		priority,
		model.Title,
		model.Message,
		model.ReadStatus,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}
	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	if entity == nil {
		return nil
	}
	return &models.NotificationModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		Category:   entity.Category().String(),
		Type:       entity.Type().String(),
		Priority:   entity.Priority().String(),
		Title:      entity.Title(),
		Message:    entity.Message(),
		ReadStatus: entity.IsRead(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
