package usecases

import (
	"context"
	"fmt"
	"strconv"

	"github.com/conseccomms/conseccomms/internal/application/common"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	"github.com/conseccomms/conseccomms/internal/application/ticket/dto"
	notificationvo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	vo "github.com/conseccomms/conseccomms/internal/domain/ticket/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type ChangeStatusCommand struct {
	UserID      uint
	TicketID    uint
	NewStatus   string
	Preferences setting.NotificationPreferences
}

type ChangeStatusResult struct {
	Ticket    *dto.TicketDTO `json:"ticket"`
	OldStatus string         `json:"old_status"`
	NewStatus string         `json:"new_status"`
}

type ChangeStatusUseCase struct {
	ticketRepo  ticket.Repository
	users       UserFinder
	notifier    notificationUsecases.Notifier
	emailSender common.EmailSender
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	users UserFinder,
	notifier notificationUsecases.Notifier,
	emailSender common.EmailSender,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		users:       users,
		notifier:    notifier,
		emailSender: emailSender,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.UserID, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error(),
			fmt.Sprintf("allowed: %v", dto.StatusStrings(oldStatus.NextStatuses())))
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	notificationType := notificationvo.TypeInfo
	if newStatus.IsResolved() {
		notificationType = notificationvo.TypeSuccess
	}
	uc.notifier.Execute(ctx, notificationUsecases.CreateNotificationCommand{
		UserID:      cmd.UserID,
		Category:    notificationvo.CategoryTicket,
		Type:        notificationType,
		Title:       "Ticket status updated",
		Message:     fmt.Sprintf("%q moved from %s to %s", t.Title(), oldStatus, newStatus),
		Preferences: cmd.Preferences,
	})

	if newStatus.IsResolved() && cmd.Preferences.Email {
		uc.sendResolvedEmail(ctx, t)
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "old_status", oldStatus, "new_status", newStatus)

	return &ChangeStatusResult{
		Ticket:    dto.ToTicketDTO(t),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
	}, nil
}

func (uc *ChangeStatusUseCase) sendResolvedEmail(ctx context.Context, t *ticket.Ticket) {
	u, err := uc.users.GetByID(ctx, t.UserID())
	if err != nil || u == nil {
		uc.logger.Warnw("cannot resolve ticket owner for email", "ticket_id", t.ID(), "error", err)
		return
	}
	common.SendEmailAsync(uc.emailSender, uc.logger, common.EmailTemplateTicketResolved, u.Email().String(), map[string]string{
		"name":         u.FullName(),
		"ticket_id":    strconv.FormatUint(uint64(t.ID()), 10),
		"ticket_title": t.Title(),
	})
}
