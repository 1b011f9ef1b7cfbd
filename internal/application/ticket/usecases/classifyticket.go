package usecases

import (
	"context"
	"fmt"

	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	"github.com/conseccomms/conseccomms/internal/application/ticket/dto"
	"github.com/conseccomms/conseccomms/internal/domain/insight"
	notificationvo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type ClassifyTicketCommand struct {
	UserID      uint
	TicketID    uint
	Preferences setting.NotificationPreferences
}

// ClassifyTicketUseCase re-runs the classifier on a stored ticket and
// persists the new AI fields.
type ClassifyTicketUseCase struct {
	ticketRepo ticket.Repository
	classifier Classifier
	notifier   notificationUsecases.Notifier
	logger     logger.Interface
}

func NewClassifyTicketUseCase(
	ticketRepo ticket.Repository,
	classifier Classifier,
	notifier notificationUsecases.Notifier,
	logger logger.Interface,
) *ClassifyTicketUseCase {
	return &ClassifyTicketUseCase{
		ticketRepo: ticketRepo,
		classifier: classifier,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *ClassifyTicketUseCase) Execute(ctx context.Context, cmd ClassifyTicketCommand) (*dto.TicketDTO, error) {
	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.UserID, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	previous := t.AICategory()
	c := uc.classifier.Classify(t.ClassificationText(), insight.DomainTicket)
	t.ApplyClassification(c)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save ticket classification", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if previous != c.Category {
		uc.notifier.Execute(ctx, notificationUsecases.CreateNotificationCommand{
			UserID:      cmd.UserID,
			Category:    notificationvo.CategoryAI,
			Title:       "Ticket re-classified",
			Message:     fmt.Sprintf("%q is now %s (%.0f%% confidence)", t.Title(), c.Category, c.Confidence*100),
			Preferences: cmd.Preferences,
		})
	}

	return dto.ToTicketDTO(t), nil
}
