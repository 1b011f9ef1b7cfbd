package http

import (
	"gorm.io/gorm"

	"github.com/conseccomms/conseccomms/internal/domain/drive"
	"github.com/conseccomms/conseccomms/internal/domain/feedback"
	"github.com/conseccomms/conseccomms/internal/domain/notification"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	"github.com/conseccomms/conseccomms/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	ticketRepo       ticket.Repository
	fileRepo         drive.FileRepository
	folderRepo       drive.FolderRepository
	proposalRepo     proposal.Repository
	proposalNumbers  proposal.NumberAllocator
	notificationRepo notification.Repository
	settingRepo      setting.Repository
	feedbackRepo     feedback.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db),
		ticketRepo:       repository.NewTicketRepository(db),
		fileRepo:         repository.NewFileRepository(db),
		folderRepo:       repository.NewFolderRepository(db),
		proposalRepo:     repository.NewProposalRepository(db),
		proposalNumbers:  repository.NewProposalSequenceAllocator(db),
		notificationRepo: repository.NewNotificationRepository(db),
		settingRepo:      repository.NewSettingRepository(db),
		feedbackRepo:     repository.NewFeedbackRepository(db),
	}
}
