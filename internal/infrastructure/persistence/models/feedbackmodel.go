package models

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/shared/constants"
)

type FeedbackModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	Message    string `gorm:"type:text;not null"`
	Category   string `gorm:"size:50"`
	Sentiment  string `gorm:"size:20"`
	Confidence float64
	CreatedAt  time.Time `gorm:"index"`
}

func (FeedbackModel) TableName() string {
	return constants.TableFeedback
}

// All returns every model in creation order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&UserSettingsModel{},
		&TicketModel{},
		&FolderModel{},
		&FileModel{},
		&ProposalModel{},
		&ProposalLineItemModel{},
		&ProposalSequenceModel{},
		&NotificationModel{},
		&FeedbackModel{},
	}
}
