// Package drive serves file metadata, folders and drive insights.
package drive

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conseccomms/conseccomms/internal/application/drive/usecases"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/middleware"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

type DriveHandler struct {
	registerFileUC   registerFileUseCase
	listFilesUC      listFilesUseCase
	toggleFavoriteUC toggleFavoriteUseCase
	moveFileUC       moveFileUseCase
	deleteFileUC     deleteFileUseCase
	createFolderUC   createFolderUseCase
	listFoldersUC    listFoldersUseCase
	insightsUC       driveInsightsUseCase
	logger           logger.Interface
}

func NewDriveHandler(
	registerFileUC registerFileUseCase,
	listFilesUC listFilesUseCase,
	toggleFavoriteUC toggleFavoriteUseCase,
	moveFileUC moveFileUseCase,
	deleteFileUC deleteFileUseCase,
	createFolderUC createFolderUseCase,
	listFoldersUC listFoldersUseCase,
	insightsUC driveInsightsUseCase,
	logger logger.Interface,
) *DriveHandler {
	return &DriveHandler{
		registerFileUC:   registerFileUC,
		listFilesUC:      listFilesUC,
		toggleFavoriteUC: toggleFavoriteUC,
		moveFileUC:       moveFileUC,
		deleteFileUC:     deleteFileUC,
		createFolderUC:   createFolderUC,
		listFoldersUC:    listFoldersUC,
		insightsUC:       insightsUC,
		logger:           logger,
	}
}

// RegisterFile handles POST /drive/files
func (h *DriveHandler) RegisterFile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RegisterFileRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for register file", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerFileUC.Execute(c.Request.Context(), usecases.RegisterFileCommand{
		UserID:      userID,
		Filename:    req.Filename,
		FileSize:    req.FileSize,
		MimeType:    req.MimeType,
		FolderID:    req.FolderID,
		Preferences: middleware.CurrentPreferences(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "File registered successfully")
}

// ListFiles handles GET /drive/files
func (h *DriveHandler) ListFiles(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q, err := parseListFilesQuery(c, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listFilesUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ToggleFavorite handles PATCH /drive/files/:id/favorite
func (h *DriveHandler) ToggleFavorite(c *gin.Context) {
	userID, fileID, ok := userAndFile(c)
	if !ok {
		return
	}

	result, err := h.toggleFavoriteUC.Execute(c.Request.Context(), userID, fileID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MoveFile handles PATCH /drive/files/:id/move
func (h *DriveHandler) MoveFile(c *gin.Context) {
	userID, fileID, ok := userAndFile(c)
	if !ok {
		return
	}

	var req MoveFileRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.moveFileUC.Execute(c.Request.Context(), usecases.MoveFileCommand{
		UserID:   userID,
		FileID:   fileID,
		FolderID: req.FolderID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "File moved successfully", result)
}

// DeleteFile handles DELETE /drive/files/:id
func (h *DriveHandler) DeleteFile(c *gin.Context) {
	userID, fileID, ok := userAndFile(c)
	if !ok {
		return
	}

	if err := h.deleteFileUC.Execute(c.Request.Context(), userID, fileID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CreateFolder handles POST /drive/folders
func (h *DriveHandler) CreateFolder(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateFolderRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createFolderUC.Execute(c.Request.Context(), usecases.CreateFolderCommand{
		UserID:     userID,
		Name:       req.Name,
		ParentPath: req.ParentPath,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Folder created successfully")
}

// ListFolders handles GET /drive/folders
func (h *DriveHandler) ListFolders(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listFoldersUC.Execute(c.Request.Context(), parseListFoldersQuery(c, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetInsights handles GET /drive/insights
func (h *DriveHandler) GetInsights(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.insightsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func userAndFile(c *gin.Context) (uint, uint, bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	fileID, err := utils.ParseIDParam(c, "id", "file")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return userID, fileID, true
}
