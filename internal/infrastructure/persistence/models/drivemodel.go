package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/conseccomms/conseccomms/internal/shared/constants"
)

type FileModel struct {
	ID              uint           `gorm:"primaryKey"`
	UserID          uint           `gorm:"not null;index:idx_files_user_folder"`
	Filename        string         `gorm:"size:255;not null"`
	FileSize        int64          `gorm:"not null"`
	MimeType        string         `gorm:"size:127"`
	StorageKey      string         `gorm:"size:255;not null;uniqueIndex"`
	FolderID        *uint          `gorm:"index:idx_files_user_folder"`
	AICategory      string         `gorm:"column:ai_category;size:50"`
	AISuggestedTags datatypes.JSON `gorm:"column:ai_suggested_tags"`
	IsFavorite      bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (FileModel) TableName() string {
	return constants.TableFiles
}

type FolderModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_folders_user_path"`
	FolderName string `gorm:"size:255;not null"`
	FolderPath string `gorm:"size:512;not null;uniqueIndex:idx_folders_user_path"`
	ParentPath string `gorm:"size:512;not null;index"`
	CreatedAt  time.Time
}

func (FolderModel) TableName() string {
	return constants.TableFolders
}
