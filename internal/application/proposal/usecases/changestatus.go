package usecases

import (
	"context"
	"fmt"
	"strconv"

	"github.com/conseccomms/conseccomms/internal/application/common"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	"github.com/conseccomms/conseccomms/internal/application/proposal/dto"
	notificationvo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	vo "github.com/conseccomms/conseccomms/internal/domain/proposal/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type ChangeStatusCommand struct {
	UserID      uint
	ProposalID  uint
	NewStatus   string
	Preferences setting.NotificationPreferences
}

type ChangeStatusUseCase struct {
	proposalRepo proposal.Repository
	users        UserFinder
	notifier     notificationUsecases.Notifier
	emailSender  common.EmailSender
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	proposalRepo proposal.Repository,
	users UserFinder,
	notifier notificationUsecases.Notifier,
	emailSender common.EmailSender,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		proposalRepo: proposalRepo,
		users:        users,
		notifier:     notifier,
		emailSender:  emailSender,
		logger:       logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.ProposalDTO, error) {
	newStatus, err := vo.NewProposalStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := loadProposal(ctx, uc.proposalRepo, uc.logger, cmd.UserID, cmd.ProposalID)
	if err != nil {
		return nil, err
	}

	oldStatus := p.Status()
	if err := p.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.proposalRepo.Update(ctx, p); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update proposal status", "proposal_id", cmd.ProposalID, "error", err)
		return nil, errors.NewInternalError("failed to update proposal")
	}

	uc.notifier.Execute(ctx, notificationUsecases.CreateNotificationCommand{
		UserID:      cmd.UserID,
		Category:    notificationvo.CategoryProposal,
		Type:        notificationTypeFor(newStatus),
		Title:       "Proposal " + newStatus.String(),
		Message:     fmt.Sprintf("%s for %s moved from %s to %s", p.ProposalNumber(), p.ClientName(), oldStatus, newStatus),
		Preferences: cmd.Preferences,
	})

	if newStatus == vo.StatusSent && cmd.Preferences.Email {
		uc.sendProposalSentEmail(ctx, p)
	}

	uc.logger.Infow("proposal status changed", "proposal_id", p.ID(), "old_status", oldStatus, "new_status", newStatus)
	return dto.ToProposalDTO(p), nil
}

func (uc *ChangeStatusUseCase) sendProposalSentEmail(ctx context.Context, p *proposal.Proposal) {
	u, err := uc.users.GetByID(ctx, p.UserID())
	if err != nil || u == nil {
		uc.logger.Warnw("cannot resolve proposal owner for email", "proposal_id", p.ID(), "error", err)
		return
	}
	common.SendEmailAsync(uc.emailSender, uc.logger, common.EmailTemplateProposalSent, u.Email().String(), map[string]string{
		"name":            u.FullName(),
		"proposal_number": p.ProposalNumber(),
		"proposal_title":  p.Title(),
		"client_name":     p.ClientName(),
		"total_amount":    strconv.FormatFloat(p.TotalAmount(), 'f', 2, 64),
	})
}

func notificationTypeFor(s vo.ProposalStatus) notificationvo.NotificationType {
	switch s {
	case vo.StatusApproved:
		return notificationvo.TypeSuccess
	case vo.StatusRejected, vo.StatusExpired:
		return notificationvo.TypeWarning
	default:
		return notificationvo.TypeInfo
	}
}
