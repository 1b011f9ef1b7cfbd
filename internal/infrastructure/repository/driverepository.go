package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/conseccomms/conseccomms/internal/domain/drive"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/mappers"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
	"github.com/conseccomms/conseccomms/internal/shared/db"
)

var allowedFileOrderByFields = map[string]bool{
	"id":          true,
	"filename":    true,
	"file_size":   true,
	"ai_category": true,
	"created_at":  true,
	"updated_at":  true,
}

type FileRepository struct {
	db     *gorm.DB
	mapper mappers.DriveMapper
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{
		db:     db,
		mapper: mappers.NewDriveMapper(),
	}
}

func (r *FileRepository) Create(ctx context.Context, f *drive.File) error {
	model, err := r.mapper.FileToModel(f)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	return f.SetID(model.ID)
}

// Update also persists a soft delete recorded on the entity.
func (r *FileRepository) Update(ctx context.Context, f *drive.File) error {
	model, err := r.mapper.FileToModel(f)
	if err != nil {
		return err
	}
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.FileModel{}).
		Scopes(db.OwnedBy(model.UserID)).
		Where("id = ?", model.ID).
		Select("filename", "folder_id", "ai_category", "ai_suggested_tags", "is_favorite", "updated_at", "deleted_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update file: %w", result.Error)
	}
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, userID, fileID uint) (*drive.File, error) {
	var model models.FileModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		First(&model, fileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return r.mapper.FileToEntity(&model)
}

func (r *FileRepository) List(ctx context.Context, userID uint, filter drive.FileFilter) ([]*drive.File, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.FileModel{}).
		Scopes(db.OwnedBy(userID))

	switch {
	case filter.FolderID != nil:
		query = query.Where("folder_id = ?", *filter.FolderID)
	case filter.RootOnly:
		query = query.Where("folder_id IS NULL")
	}
	if filter.FavoriteOnly {
		query = query.Where("is_favorite = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("ai_category = ?", filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(filename) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count files: %w", err)
	}

	order := filter.OrderClause(allowedFileOrderByFields)
	if order == "" {
		order = "created_at DESC, id DESC"
	}

	var modelList []*models.FileModel
	if err := query.Order(order).Offset(filter.Offset()).Limit(filter.Limit()).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list files: %w", err)
	}

	files, err := r.mapper.FilesToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

func (r *FileRepository) ListAll(ctx context.Context, userID uint) ([]*drive.File, error) {
	var modelList []*models.FileModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return r.mapper.FilesToEntities(modelList)
}

type FolderRepository struct {
	db     *gorm.DB
	mapper mappers.DriveMapper
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{
		db:     db,
		mapper: mappers.NewDriveMapper(),
	}
}

func (r *FolderRepository) Create(ctx context.Context, f *drive.Folder) error {
	model := r.mapper.FolderToModel(f)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	return f.SetID(model.ID)
}

func (r *FolderRepository) GetByID(ctx context.Context, userID, folderID uint) (*drive.Folder, error) {
	var model models.FolderModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		First(&model, folderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	return r.mapper.FolderToEntity(&model)
}

func (r *FolderRepository) GetByPath(ctx context.Context, userID uint, folderPath string) (*drive.Folder, error) {
	var model models.FolderModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Where("folder_path = ?", folderPath).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get folder by path: %w", err)
	}
	return r.mapper.FolderToEntity(&model)
}

func (r *FolderRepository) ExistsByPath(ctx context.Context, userID uint, folderPath string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.FolderModel{}).
		Scopes(db.OwnedBy(userID)).
		Where("folder_path = ?", folderPath).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check folder path: %w", err)
	}
	return count > 0, nil
}

// List returns every folder of the user when parentPath is nil, otherwise
// only the direct children of parentPath.
func (r *FolderRepository) List(ctx context.Context, userID uint, parentPath *string) ([]*drive.Folder, error) {
	query := db.GetTxFromContext(ctx, r.db).Scopes(db.OwnedBy(userID))
	if parentPath != nil {
		query = query.Where("parent_path = ?", *parentPath)
	}

	var modelList []*models.FolderModel
	if err := query.Order("folder_path ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return r.mapper.FoldersToEntities(modelList)
}
