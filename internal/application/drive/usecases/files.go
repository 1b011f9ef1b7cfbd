package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/drive/dto"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/drive"
	"github.com/conseccomms/conseccomms/internal/domain/insight"
	notificationvo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

// DefaultStorageKey namespaces a random UUID under the owning user.
func DefaultStorageKey(userID uint) string {
	return fmt.Sprintf("users/%d/%s", userID, uuid.NewString())
}

type RegisterFileCommand struct {
	UserID      uint
	Filename    string
	FileSize    int64
	MimeType    string
	FolderID    *uint
	Preferences setting.NotificationPreferences
}

// RegisterFileUseCase records metadata for an uploaded file. The bytes
// themselves are written to object storage under the returned key.
type RegisterFileUseCase struct {
	fileRepo   drive.FileRepository
	folderRepo drive.FolderRepository
	classifier Classifier
	notifier   notificationUsecases.Notifier
	storageKey StorageKeyFunc
	logger     logger.Interface
}

func NewRegisterFileUseCase(
	fileRepo drive.FileRepository,
	folderRepo drive.FolderRepository,
	classifier Classifier,
	notifier notificationUsecases.Notifier,
	storageKey StorageKeyFunc,
	logger logger.Interface,
) *RegisterFileUseCase {
	if storageKey == nil {
		storageKey = DefaultStorageKey
	}
	return &RegisterFileUseCase{
		fileRepo:   fileRepo,
		folderRepo: folderRepo,
		classifier: classifier,
		notifier:   notifier,
		storageKey: storageKey,
		logger:     logger,
	}
}

func (uc *RegisterFileUseCase) Execute(ctx context.Context, cmd RegisterFileCommand) (*dto.FileDTO, error) {
	if cmd.FolderID != nil {
		if err := ensureFolder(ctx, uc.folderRepo, uc.logger, cmd.UserID, *cmd.FolderID); err != nil {
			return nil, err
		}
	}

	f, err := drive.NewFile(cmd.UserID, cmd.Filename, cmd.FileSize, cmd.MimeType, uc.storageKey(cmd.UserID), cmd.FolderID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	f.ApplyClassification(uc.classifier.Classify(f.Filename(), insight.DomainFile))

	if err := uc.fileRepo.Create(ctx, f); err != nil {
		uc.logger.Errorw("failed to register file", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to register file")
	}

	uc.notifier.Execute(ctx, notificationUsecases.CreateNotificationCommand{
		UserID:      cmd.UserID,
		Category:    notificationvo.CategoryDrive,
		Type:        notificationvo.TypeSuccess,
		Title:       "File uploaded",
		Message:     fmt.Sprintf("%s was added to your drive as %s", f.Filename(), f.AICategory()),
		Preferences: cmd.Preferences,
	})

	uc.logger.Infow("file registered", "file_id", f.ID(), "category", f.AICategory())
	return dto.ToFileDTO(f), nil
}

type ListFilesQuery struct {
	UserID       uint
	FolderID     *uint
	RootOnly     bool
	FavoriteOnly bool
	Category     string
	Search       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

type ListFilesUseCase struct {
	fileRepo drive.FileRepository
	logger   logger.Interface
}

func NewListFilesUseCase(fileRepo drive.FileRepository, logger logger.Interface) *ListFilesUseCase {
	return &ListFilesUseCase{
		fileRepo: fileRepo,
		logger:   logger,
	}
}

func (uc *ListFilesUseCase) Execute(ctx context.Context, q ListFilesQuery) (*commondto.ListResult[dto.FileDTO], error) {
	if q.FolderID != nil && q.RootOnly {
		return nil, errors.NewValidationError("folder_id and root_only cannot be combined")
	}
	filter := drive.FileFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
		},
		FolderID:     q.FolderID,
		RootOnly:     q.RootOnly,
		FavoriteOnly: q.FavoriteOnly,
		Category:     q.Category,
		Search:       q.Search,
	}

	files, total, err := uc.fileRepo.List(ctx, q.UserID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list files", "user_id", q.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list files")
	}
	return commondto.NewListResult(dto.ToFileDTOs(files), total, q.Page, filter.Limit()), nil
}

type ToggleFavoriteUseCase struct {
	fileRepo drive.FileRepository
	logger   logger.Interface
}

func NewToggleFavoriteUseCase(fileRepo drive.FileRepository, logger logger.Interface) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		fileRepo: fileRepo,
		logger:   logger,
	}
}

func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, userID, fileID uint) (*dto.FileDTO, error) {
	f, err := loadFile(ctx, uc.fileRepo, uc.logger, userID, fileID)
	if err != nil {
		return nil, err
	}
	f.ToggleFavorite()
	if err := uc.fileRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update file", "file_id", fileID, "error", err)
		return nil, errors.NewInternalError("failed to update file")
	}
	return dto.ToFileDTO(f), nil
}

type MoveFileCommand struct {
	UserID   uint
	FileID   uint
	FolderID *uint
}

type MoveFileUseCase struct {
	fileRepo   drive.FileRepository
	folderRepo drive.FolderRepository
	logger     logger.Interface
}

func NewMoveFileUseCase(fileRepo drive.FileRepository, folderRepo drive.FolderRepository, logger logger.Interface) *MoveFileUseCase {
	return &MoveFileUseCase{
		fileRepo:   fileRepo,
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// Execute moves a file into a folder, or to the root when FolderID is nil.
func (uc *MoveFileUseCase) Execute(ctx context.Context, cmd MoveFileCommand) (*dto.FileDTO, error) {
	f, err := loadFile(ctx, uc.fileRepo, uc.logger, cmd.UserID, cmd.FileID)
	if err != nil {
		return nil, err
	}
	if cmd.FolderID != nil {
		if err := ensureFolder(ctx, uc.folderRepo, uc.logger, cmd.UserID, *cmd.FolderID); err != nil {
			return nil, err
		}
	}
	if err := f.MoveTo(cmd.FolderID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.fileRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to move file", "file_id", cmd.FileID, "error", err)
		return nil, errors.NewInternalError("failed to move file")
	}
	return dto.ToFileDTO(f), nil
}

type DeleteFileUseCase struct {
	fileRepo drive.FileRepository
	logger   logger.Interface
}

func NewDeleteFileUseCase(fileRepo drive.FileRepository, logger logger.Interface) *DeleteFileUseCase {
	return &DeleteFileUseCase{
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// Execute soft-deletes the file; the row is kept with deleted_at set.
func (uc *DeleteFileUseCase) Execute(ctx context.Context, userID, fileID uint) error {
	f, err := loadFile(ctx, uc.fileRepo, uc.logger, userID, fileID)
	if err != nil {
		return err
	}
	if err := f.SoftDelete(); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.fileRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to delete file", "file_id", fileID, "error", err)
		return errors.NewInternalError("failed to delete file")
	}
	uc.logger.Infow("file deleted", "file_id", fileID, "user_id", userID)
	return nil
}

type DriveInsightsUseCase struct {
	fileRepo    drive.FileRepository
	synthesizer DriveSynthesizer
	logger      logger.Interface
}

func NewDriveInsightsUseCase(fileRepo drive.FileRepository, synthesizer DriveSynthesizer, logger logger.Interface) *DriveInsightsUseCase {
	return &DriveInsightsUseCase{
		fileRepo:    fileRepo,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

func (uc *DriveInsightsUseCase) Execute(ctx context.Context, userID uint) (*dto.DriveInsightDTO, error) {
	files, err := uc.fileRepo.ListAll(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load files for insights", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to load files")
	}
	facts := make([]insight.FileFacts, 0, len(files))
	for _, f := range files {
		facts = append(facts, f.Facts())
	}
	return dto.ToDriveInsightDTO(uc.synthesizer.SynthesizeDrive(facts)), nil
}

func loadFile(ctx context.Context, repo drive.FileRepository, log logger.Interface, userID, fileID uint) (*drive.File, error) {
	if fileID == 0 {
		return nil, errors.NewValidationError("file ID is required")
	}
	f, err := repo.GetByID(ctx, userID, fileID)
	if err != nil {
		log.Errorw("failed to get file", "file_id", fileID, "error", err)
		return nil, errors.NewInternalError("failed to get file")
	}
	if f == nil || f.UserID() != userID || f.IsDeleted() {
		return nil, errors.NewNotFoundError("file not found")
	}
	return f, nil
}

func ensureFolder(ctx context.Context, repo drive.FolderRepository, log logger.Interface, userID, folderID uint) error {
	folder, err := repo.GetByID(ctx, userID, folderID)
	if err != nil {
		log.Errorw("failed to get folder", "folder_id", folderID, "error", err)
		return errors.NewInternalError("failed to get folder")
	}
	if folder == nil || folder.UserID() != userID {
		return errors.NewNotFoundError("folder not found")
	}
	return nil
}
