package dto

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/domain/notification"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type NotificationDTO struct {
	ID        uint      `json:"id"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:        n.ID(),
		Category:  n.Category().String(),
		Type:      n.Type().String(),
		Priority:  n.Priority().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationDTOs(items []*notification.Notification) []NotificationDTO {
	return mapper.MapSlice(items, func(n *notification.Notification) NotificationDTO {
		return *ToNotificationDTO(n)
	})
}
