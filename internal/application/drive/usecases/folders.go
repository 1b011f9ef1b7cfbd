package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/application/drive/dto"
	"github.com/conseccomms/conseccomms/internal/domain/drive"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type CreateFolderCommand struct {
	UserID     uint
	Name       string
	ParentPath string
}

type CreateFolderUseCase struct {
	folderRepo drive.FolderRepository
	logger     logger.Interface
}

func NewCreateFolderUseCase(folderRepo drive.FolderRepository, logger logger.Interface) *CreateFolderUseCase {
	return &CreateFolderUseCase{
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// Execute creates parent_path + "/" + name. The parent must exist unless it
// is the root; an existing path is a conflict.
func (uc *CreateFolderUseCase) Execute(ctx context.Context, cmd CreateFolderCommand) (*dto.FolderDTO, error) {
	folder, err := drive.NewFolder(cmd.UserID, cmd.Name, cmd.ParentPath)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if !folder.IsRoot() {
		parentExists, err := uc.folderRepo.ExistsByPath(ctx, cmd.UserID, folder.ParentPath())
		if err != nil {
			uc.logger.Errorw("failed to check parent folder", "parent_path", folder.ParentPath(), "error", err)
			return nil, errors.NewInternalError("failed to create folder")
		}
		if !parentExists {
			return nil, errors.NewNotFoundError("parent folder not found", folder.ParentPath())
		}
	}

	exists, err := uc.folderRepo.ExistsByPath(ctx, cmd.UserID, folder.Path())
	if err != nil {
		uc.logger.Errorw("failed to check folder path", "folder_path", folder.Path(), "error", err)
		return nil, errors.NewInternalError("failed to create folder")
	}
	if exists {
		return nil, errors.NewConflictError("folder already exists", folder.Path())
	}

	if err := uc.folderRepo.Create(ctx, folder); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("folder already exists", folder.Path())
		}
		uc.logger.Errorw("failed to create folder", "folder_path", folder.Path(), "error", err)
		return nil, errors.NewInternalError("failed to create folder")
	}

	uc.logger.Infow("folder created", "folder_id", folder.ID(), "folder_path", folder.Path())
	return dto.ToFolderDTO(folder), nil
}

type ListFoldersQuery struct {
	UserID uint
	// ParentPath nil lists every folder; a pointer to "" lists top-level ones.
	ParentPath *string
}

type ListFoldersUseCase struct {
	folderRepo drive.FolderRepository
	logger     logger.Interface
}

func NewListFoldersUseCase(folderRepo drive.FolderRepository, logger logger.Interface) *ListFoldersUseCase {
	return &ListFoldersUseCase{
		folderRepo: folderRepo,
		logger:     logger,
	}
}

func (uc *ListFoldersUseCase) Execute(ctx context.Context, q ListFoldersQuery) ([]dto.FolderDTO, error) {
	parent := q.ParentPath
	if parent != nil {
		normalized := drive.NormalizeParentPath(*parent)
		parent = &normalized
	}
	folders, err := uc.folderRepo.List(ctx, q.UserID, parent)
	if err != nil {
		uc.logger.Errorw("failed to list folders", "user_id", q.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list folders")
	}
	return dto.ToFolderDTOs(folders), nil
}
