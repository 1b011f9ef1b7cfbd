package dto

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/domain/drive"
	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type FileDTO struct {
	ID              uint      `json:"id"`
	Filename        string    `json:"filename"`
	FileSize        int64     `json:"file_size"`
	MimeType        string    `json:"mime_type"`
	StorageKey      string    `json:"storage_key"`
	FolderID        *uint     `json:"folder_id"`
	AICategory      string    `json:"ai_category"`
	AISuggestedTags []string  `json:"ai_suggested_tags"`
	IsFavorite      bool      `json:"is_favorite"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToFileDTO(f *drive.File) *FileDTO {
	if f == nil {
		return nil
	}
	return &FileDTO{
		ID:              f.ID(),
		Filename:        f.Filename(),
		FileSize:        f.FileSize(),
		MimeType:        f.MimeType(),
		StorageKey:      f.StorageKey(),
		FolderID:        f.FolderID(),
		AICategory:      f.AICategory(),
		AISuggestedTags: f.AISuggestedTags(),
		IsFavorite:      f.IsFavorite(),
		CreatedAt:       f.CreatedAt(),
		UpdatedAt:       f.UpdatedAt(),
	}
}

func ToFileDTOs(items []*drive.File) []FileDTO {
	return mapper.MapSlice(items, func(f *drive.File) FileDTO {
		return *ToFileDTO(f)
	})
}

type FolderDTO struct {
	ID         uint      `json:"id"`
	FolderName string    `json:"folder_name"`
	FolderPath string    `json:"folder_path"`
	ParentPath string    `json:"parent_path"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToFolderDTO(f *drive.Folder) *FolderDTO {
	if f == nil {
		return nil
	}
	return &FolderDTO{
		ID:         f.ID(),
		FolderName: f.Name(),
		FolderPath: f.Path(),
		ParentPath: f.ParentPath(),
		CreatedAt:  f.CreatedAt(),
	}
}

func ToFolderDTOs(items []*drive.Folder) []FolderDTO {
	return mapper.MapSlice(items, func(f *drive.Folder) FolderDTO {
		return *ToFolderDTO(f)
	})
}

type DuplicateGroupDTO struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Count    int    `json:"count"`
}

type TagCountDTO struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type DriveInsightDTO struct {
	TotalFiles      int                 `json:"total_files"`
	TotalBytes      int64               `json:"total_bytes"`
	BytesByCategory map[string]int64    `json:"bytes_by_category"`
	FavoriteCount   int                 `json:"favorite_count"`
	DuplicateGroups []DuplicateGroupDTO `json:"duplicate_groups"`
	TopTags         []TagCountDTO       `json:"top_tags"`
	Recommendation  string              `json:"recommendation"`
}

func ToDriveInsightDTO(in insight.DriveInsight) *DriveInsightDTO {
	return &DriveInsightDTO{
		TotalFiles:      in.TotalFiles,
		TotalBytes:      in.TotalBytes,
		BytesByCategory: in.BytesByCategory,
		FavoriteCount:   in.FavoriteCount,
		DuplicateGroups: mapper.MapSlice(in.DuplicateGroups, func(g insight.DuplicateGroup) DuplicateGroupDTO {
			return DuplicateGroupDTO{Filename: g.Filename, Size: g.Size, Count: g.Count}
		}),
		TopTags: mapper.MapSlice(in.TopTags, func(tc insight.TagCount) TagCountDTO {
			return TagCountDTO{Tag: tc.Tag, Count: tc.Count}
		}),
		Recommendation: in.Recommendation,
	}
}
