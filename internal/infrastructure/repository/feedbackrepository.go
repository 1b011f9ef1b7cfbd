package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/conseccomms/conseccomms/internal/domain/feedback"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/mappers"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
	"github.com/conseccomms/conseccomms/internal/shared/db"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	model := mappers.FeedbackToModel(f)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return f.SetID(model.ID)
}

func (r *FeedbackRepository) List(ctx context.Context, userID uint, page query.PageFilter) ([]*feedback.Feedback, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Model(&models.FeedbackModel{}).
		Scopes(db.OwnedBy(userID))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	var modelList []*models.FeedbackModel
	if err := q.Order("created_at DESC, id DESC").Offset(page.Offset()).Limit(page.Limit()).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}

	items, err := mapper.MapSliceWithError(modelList, mappers.FeedbackToEntity)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
