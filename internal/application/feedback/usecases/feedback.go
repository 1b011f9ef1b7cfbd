package usecases

import (
	"context"
	"fmt"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/feedback/dto"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/feedback"
	"github.com/conseccomms/conseccomms/internal/domain/insight"
	notificationvo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

type Classifier interface {
	Classify(text string, domain insight.Domain) insight.Classification
}

type SubmitFeedbackCommand struct {
	UserID      uint
	Message     string
	Preferences setting.NotificationPreferences
}

type SubmitFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	classifier   Classifier
	notifier     notificationUsecases.Notifier
	logger       logger.Interface
}

func NewSubmitFeedbackUseCase(
	feedbackRepo feedback.Repository,
	classifier Classifier,
	notifier notificationUsecases.Notifier,
	logger logger.Interface,
) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		classifier:   classifier,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*dto.FeedbackDTO, error) {
	f, err := feedback.NewFeedback(cmd.UserID, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	result := uc.classifier.Classify(f.Message(), insight.DomainFeedback)
	f.ApplyClassification(result)

	if err := uc.feedbackRepo.Create(ctx, f); err != nil {
		uc.logger.Errorw("failed to save feedback", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to submit feedback")
	}

	uc.notifier.Execute(ctx, notificationUsecases.CreateNotificationCommand{
		UserID:      cmd.UserID,
		Category:    notificationvo.CategoryAI,
		Type:        notificationvo.TypeInfo,
		Title:       "Feedback analyzed",
		Message:     fmt.Sprintf("Your feedback was classified as %s with %s sentiment.", result.Category, result.Sentiment),
		Preferences: cmd.Preferences,
	})

	uc.logger.Infow("feedback submitted", "feedback_id", f.ID(), "category", result.Category)
	return dto.ToFeedbackDTO(f), nil
}

type ListFeedbackQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

type ListFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewListFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *ListFeedbackUseCase {
	return &ListFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *ListFeedbackUseCase) Execute(ctx context.Context, q ListFeedbackQuery) (*commondto.ListResult[dto.FeedbackDTO], error) {
	page := query.PageFilter{Page: q.Page, PageSize: q.PageSize}
	items, total, err := uc.feedbackRepo.List(ctx, q.UserID, page)
	if err != nil {
		uc.logger.Errorw("failed to list feedback", "user_id", q.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list feedback")
	}
	return commondto.NewListResult(dto.ToFeedbackDTOs(items), total, q.Page, page.Limit()), nil
}
