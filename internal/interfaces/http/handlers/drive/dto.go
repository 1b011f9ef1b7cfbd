package drive

import (
	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/application/drive/usecases"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

type RegisterFileRequest struct {
	Filename string `json:"filename" validate:"required,max=255"`
	FileSize int64  `json:"file_size" validate:"gte=0"`
	MimeType string `json:"mime_type" validate:"max=127"`
	FolderID *uint  `json:"folder_id" validate:"omitempty,gt=0"`
}

// MoveFileRequest moves to the root when folder_id is null.
type MoveFileRequest struct {
	FolderID *uint `json:"folder_id" validate:"omitempty,gt=0"`
}

type CreateFolderRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	ParentPath string `json:"parent_path" validate:"max=512"`
}

func parseListFilesQuery(c *gin.Context, userID uint) (usecases.ListFilesQuery, error) {
	folderID, err := utils.ParseOptionalUintQuery(c, "folder_id")
	if err != nil {
		return usecases.ListFilesQuery{}, err
	}
	p := utils.ParsePagination(c)
	return usecases.ListFilesQuery{
		UserID:       userID,
		FolderID:     folderID,
		RootOnly:     c.Query("root_only") == "true",
		FavoriteOnly: c.Query("favorite") == "true",
		Category:     c.Query("category"),
		Search:       c.Query("search"),
		Page:         p.Page,
		PageSize:     p.PageSize,
		SortBy:       c.Query("sort_by"),
		SortOrder:    c.Query("sort_order"),
	}, nil
}

func parseListFoldersQuery(c *gin.Context, userID uint) usecases.ListFoldersQuery {
	q := usecases.ListFoldersQuery{UserID: userID}
	if parent, ok := c.GetQuery("parent_path"); ok {
		q.ParentPath = &parent
	}
	return q
}
