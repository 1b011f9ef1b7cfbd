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
	vo "github.com/conseccomms/conseccomms/internal/domain/ticket/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID      uint
	Title       string
	Description string
	Priority    string
	Preferences setting.NotificationPreferences
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	classifier Classifier
	sanitizer  TextSanitizer
	notifier   notificationUsecases.Notifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	classifier Classifier,
	sanitizer TextSanitizer,
	notifier notificationUsecases.Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		classifier: classifier,
		sanitizer:  sanitizer,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.UserID)

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := ticket.NewTicket(cmd.UserID, uc.sanitizer.StripTags(cmd.Title), uc.sanitizer.StripTags(cmd.Description), priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t.ApplyClassification(uc.classifier.Classify(t.ClassificationText(), insight.DomainTicket))

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.notifier.Execute(ctx, notificationUsecases.CreateNotificationCommand{
		UserID:      cmd.UserID,
		Category:    notificationvo.CategoryTicket,
		Type:        notificationvo.TypeSuccess,
		Priority:    notificationPriorityFor(t.Priority()),
		Title:       "Ticket created",
		Message:     fmt.Sprintf("%q was filed as %s", t.Title(), t.AICategory()),
		Preferences: cmd.Preferences,
	})

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "category", t.AICategory(), "confidence", t.AIConfidence())
	return dto.ToTicketDTO(t), nil
}

// notificationPriorityFor maps an urgent ticket to an urgent notification so
// it bypasses the user's ticket preference.
func notificationPriorityFor(p vo.Priority) notificationvo.Priority {
	switch p {
	case vo.PriorityUrgent:
		return notificationvo.PriorityUrgent
	case vo.PriorityHigh:
		return notificationvo.PriorityHigh
	default:
		return notificationvo.PriorityNormal
	}
}
