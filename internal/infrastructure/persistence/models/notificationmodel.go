package models

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/shared/constants"
)

type NotificationModel struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index:idx_notifications_user_read"`
	Category   string    `gorm:"size:20;not null;index"`
	Type       string    `gorm:"size:20;not null"`
	Priority   string    `gorm:"size:20;not null;default:'normal'"`
	Title      string    `gorm:"size:255;not null"`
	Message    string    `gorm:"type:text;not null"`
	ReadStatus bool      `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt  time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
