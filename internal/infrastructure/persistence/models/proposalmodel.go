package models

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/shared/constants"
)

type ProposalModel struct {
	ID             uint    `gorm:"primaryKey"`
	UserID         uint    `gorm:"not null;index:idx_proposals_user_status"`
	ProposalNumber string  `gorm:"size:32;not null;uniqueIndex"`
	Title          string  `gorm:"size:200;not null"`
	ClientName     string  `gorm:"size:200;not null"`
	ClientEmail    string  `gorm:"size:255"`
	Description    string  `gorm:"type:text"`
	Status         string  `gorm:"size:20;not null;default:'draft';index:idx_proposals_user_status"`
	TotalAmount    float64 `gorm:"not null;default:0"`
	ValidUntil     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	SentAt         *time.Time

	LineItems []ProposalLineItemModel `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
}

func (ProposalModel) TableName() string {
	return constants.TableProposals
}

type ProposalLineItemModel struct {
	ID          uint    `gorm:"primaryKey"`
	ProposalID  uint    `gorm:"not null;index"`
	Position    int     `gorm:"not null"`
	Description string  `gorm:"size:500;not null"`
	Quantity    float64 `gorm:"not null"`
	UnitPrice   float64 `gorm:"not null"`
	Amount      float64 `gorm:"not null"`
}

func (ProposalLineItemModel) TableName() string {
	return constants.TableProposalLineItems
}

// ProposalSequenceModel holds the last number handed out per year.
type ProposalSequenceModel struct {
	Year    int `gorm:"primaryKey;autoIncrement:false"`
	LastSeq int `gorm:"not null;default:0"`
}

func (ProposalSequenceModel) TableName() string {
	return constants.TableProposalSequences
}
