package drive

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/shared/query"
)

type FileRepository interface {
	Create(ctx context.Context, file *File) error
	Update(ctx context.Context, file *File) error
	GetByID(ctx context.Context, userID, fileID uint) (*File, error)
	List(ctx context.Context, userID uint, filter FileFilter) ([]*File, int64, error)
	// ListAll returns every non-deleted file of the user.
	ListAll(ctx context.Context, userID uint) ([]*File, error)
}

type FileFilter struct {
	query.BaseFilter
	FolderID     *uint
	RootOnly     bool
	FavoriteOnly bool
	Category     string
	Search       string
}

type FolderRepository interface {
	Create(ctx context.Context, folder *Folder) error
	GetByID(ctx context.Context, userID, folderID uint) (*Folder, error)
	GetByPath(ctx context.Context, userID uint, folderPath string) (*Folder, error)
	ExistsByPath(ctx context.Context, userID uint, folderPath string) (bool, error)
	List(ctx context.Context, userID uint, parentPath *string) ([]*Folder, error)
}
