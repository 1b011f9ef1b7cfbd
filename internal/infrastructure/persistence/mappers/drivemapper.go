package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/conseccomms/conseccomms/internal/domain/drive"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type DriveMapper interface {
	FileToEntity(model *models.FileModel) (*drive.File, error)
	FileToModel(entity *drive.File) (*models.FileModel, error)
	FilesToEntities(models []*models.FileModel) ([]*drive.File, error)
	FolderToEntity(model *models.FolderModel) (*drive.Folder, error)
	FolderToModel(entity *drive.Folder) *models.FolderModel
	FoldersToEntities(models []*models.FolderModel) ([]*drive.Folder, error)
}

type DriveMapperImpl struct{}

func NewDriveMapper() DriveMapper {
	return &DriveMapperImpl{}
}

func (m *DriveMapperImpl) FileToEntity(model *models.FileModel) (*drive.File, error) {
	if model == nil {
		return nil, nil
	}

	var tags []string
	if len(model.AISuggestedTags) > 0 {
		if err := json.Unmarshal(model.AISuggestedTags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal suggested tags: %w", err)
		}
	}

	var deletedAt *time.Time
	if model.DeletedAt.Valid {
		t := model.DeletedAt.Time
		deletedAt = &t
	}

	return drive.ReconstructFile(
		model.ID,
		model.UserID,
		model.Filename,
		model.FileSize,
		model.MimeType,
		model.StorageKey,
		model.FolderID,
		model.AICategory,
		tags,
		model.IsFavorite,
		model.CreatedAt,
		model.UpdatedAt,
		deletedAt,
	)
}

func (m *DriveMapperImpl) FileToModel(entity *drive.File) (*models.FileModel, error) {
	if entity == nil {
		return nil, nil
	}

	tagsBytes, err := json.Marshal(entity.AISuggestedTags())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal suggested tags: %w", err)
	}

	model := &models.FileModel{
		ID:              entity.ID(),
		UserID:          entity.UserID(),
		Filename:        entity.Filename(),
		FileSize:        entity.FileSize(),
		MimeType:        entity.MimeType(),
		StorageKey:      entity.StorageKey(),
		FolderID:        entity.FolderID(),
		AICategory:      entity.AICategory(),
		AISuggestedTags: tagsBytes,
		IsFavorite:      entity.IsFavorite(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
	if entity.DeletedAt() != nil {
		model.DeletedAt.Time = *entity.DeletedAt()
		model.DeletedAt.Valid = true
	}
	return model, nil
}

func (m *DriveMapperImpl) FilesToEntities(modelList []*models.FileModel) ([]*drive.File, error) {
	return mapper.MapSliceWithError(modelList, m.FileToEntity)
}

func (m *DriveMapperImpl) FolderToEntity(model *models.FolderModel) (*drive.Folder, error) {
	if model == nil {
		return nil, nil
	}
	return drive.ReconstructFolder(model.ID, model.UserID, model.FolderName, model.FolderPath, model.ParentPath, model.CreatedAt)
}

func (m *DriveMapperImpl) FolderToModel(entity *drive.Folder) *models.FolderModel {
	if entity == nil {
		return nil
	}
	return &models.FolderModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		FolderName: entity.Name(),
		FolderPath: entity.Path(),
		ParentPath: entity.ParentPath(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func (m *DriveMapperImpl) FoldersToEntities(modelList []*models.FolderModel) ([]*drive.Folder, error) {
	return mapper.MapSliceWithError(modelList, m.FolderToEntity)
}
