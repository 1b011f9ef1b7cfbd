package drive

import (
	"context"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/drive/dto"
	"github.com/conseccomms/conseccomms/internal/application/drive/usecases"
)

type registerFileUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterFileCommand) (*dto.FileDTO, error)
}

type listFilesUseCase interface {
	Execute(ctx context.Context, q usecases.ListFilesQuery) (*commondto.ListResult[dto.FileDTO], error)
}

type toggleFavoriteUseCase interface {
	Execute(ctx context.Context, userID, fileID uint) (*dto.FileDTO, error)
}

type moveFileUseCase interface {
	Execute(ctx context.Context, cmd usecases.MoveFileCommand) (*dto.FileDTO, error)
}

type deleteFileUseCase interface {
	Execute(ctx context.Context, userID, fileID uint) error
}

type createFolderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateFolderCommand) (*dto.FolderDTO, error)
}

type listFoldersUseCase interface {
	Execute(ctx context.Context, q usecases.ListFoldersQuery) ([]dto.FolderDTO, error)
}

type driveInsightsUseCase interface {
	Execute(ctx context.Context, userID uint) (*dto.DriveInsightDTO, error)
}
