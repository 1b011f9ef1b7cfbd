package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/conseccomms/conseccomms/internal/shared/constants"
)

type UserModel struct {
	ID               uint   `gorm:"primaryKey"`
	Email            string `gorm:"size:255;not null;uniqueIndex"`
	FullName         string `gorm:"size:100;not null"`
	PasswordHash     string `gorm:"size:255;not null"`
	Role             string `gorm:"size:20;not null;default:'user'"`
	SubscriptionPlan string `gorm:"size:20;not null;default:'free'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

// UserSettingsModel stores the whole preference document of one user.
type UserSettingsModel struct {
	UserID    uint           `gorm:"primaryKey;autoIncrement:false"`
	Settings  datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (UserSettingsModel) TableName() string {
	return constants.TableUserSettings
}
