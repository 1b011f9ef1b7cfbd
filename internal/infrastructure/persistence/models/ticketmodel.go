package models

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/shared/constants"
)

type TicketModel struct {
	ID                  uint      `gorm:"primaryKey"`
	UserID              uint      `gorm:"not null;index:idx_tickets_user_status"`
	Title               string    `gorm:"size:200;not null"`
	Description         string    `gorm:"type:text"`
	Status              string    `gorm:"size:20;not null;default:'open';index:idx_tickets_user_status"`
	Priority            string    `gorm:"size:20;not null;default:'medium'"`
	AICategory          string    `gorm:"column:ai_category;size:50;index"`
	AISubCategory       string    `gorm:"column:ai_sub_category;size:50"`
	AISentiment         string    `gorm:"column:ai_sentiment;size:20"`
	AIConfidence        float64   `gorm:"column:ai_confidence"`
	AISuggestedResponse string    `gorm:"column:ai_suggested_response;type:text"`
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
	ResolvedAt          *time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
