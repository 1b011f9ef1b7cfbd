// Package drive holds file metadata and the folder tree of the Drive app.
// File bytes live in object storage addressed by the storage key.
package drive

import (
	"fmt"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
)

const maxFilenameLength = 255

type File struct {
	id              uint
	userID          uint
	filename        string
	fileSize        int64
	mimeType        string
	storageKey      string
	folderID        *uint
	aiCategory      string
	aiSuggestedTags []string
	isFavorite      bool
	createdAt       time.Time
	updatedAt       time.Time
	deletedAt       *time.Time
}

func NewFile(userID uint, filename string, fileSize int64, mimeType, storageKey string, folderID *uint) (*File, error) {
	filename = strings.TrimSpace(filename)
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if utf8.RuneCountInString(filename) > maxFilenameLength {
		return nil, fmt.Errorf("filename exceeds maximum length of %d characters", maxFilenameLength)
	}
	if strings.ContainsAny(filename, "/\\") {
		return nil, fmt.Errorf("filename must not contain path separators")
	}
	if fileSize < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}

	now := time.Now().UTC()
	return &File{
		userID:          userID,
		filename:        filename,
		fileSize:        fileSize,
		mimeType:        mimeType,
		storageKey:      storageKey,
		folderID:        folderID,
		aiSuggestedTags: []string{},
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructFile(
	id, userID uint,
	filename string,
	fileSize int64,
	mimeType, storageKey string,
	folderID *uint,
	aiCategory string,
	aiSuggestedTags []string,
	isFavorite bool,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*File, error) {
	if id == 0 {
		return nil, fmt.Errorf("file ID cannot be zero")
	}
	if aiSuggestedTags == nil {
		aiSuggestedTags = []string{}
	}
	return &File{
		id:              id,
		userID:          userID,
		filename:        filename,
		fileSize:        fileSize,
		mimeType:        mimeType,
		storageKey:      storageKey,
		folderID:        folderID,
		aiCategory:      aiCategory,
		aiSuggestedTags: aiSuggestedTags,
		isFavorite:      isFavorite,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		deletedAt:       deletedAt,
	}, nil
}

func (f *File) ID() uint {
	return f.id
}

func (f *File) UserID() uint {
	return f.userID
}

func (f *File) Filename() string {
	return f.filename
}

func (f *File) FileSize() int64 {
	return f.fileSize
}

func (f *File) MimeType() string {
	return f.mimeType
}

func (f *File) StorageKey() string {
	return f.storageKey
}

func (f *File) FolderID() *uint {
	return f.folderID
}

func (f *File) AICategory() string {
	return f.aiCategory
}

func (f *File) AISuggestedTags() []string {
	out := make([]string, len(f.aiSuggestedTags))
	copy(out, f.aiSuggestedTags)
	return out
}

func (f *File) IsFavorite() bool {
	return f.isFavorite
}

func (f *File) CreatedAt() time.Time {
	return f.createdAt
}

func (f *File) UpdatedAt() time.Time {
	return f.updatedAt
}

func (f *File) DeletedAt() *time.Time {
	return f.deletedAt
}

func (f *File) IsDeleted() bool {
	return f.deletedAt != nil
}

// Extension returns the lower-cased extension without the dot.
func (f *File) Extension() string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(f.filename), "."))
}

func (f *File) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("file ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("file ID cannot be zero")
	}
	f.id = id
	return nil
}

// ApplyClassification stores the filename classification.
func (f *File) ApplyClassification(c insight.Classification) {
	f.aiCategory = c.Category
	f.aiSuggestedTags = append([]string{}, c.SuggestedTags...)
	f.updatedAt = time.Now().UTC()
}

// ToggleFavorite flips the favourite flag and returns the new value.
func (f *File) ToggleFavorite() bool {
	f.isFavorite = !f.isFavorite
	f.updatedAt = time.Now().UTC()
	return f.isFavorite
}

// MoveTo places the file in a folder; nil moves it to the root.
func (f *File) MoveTo(folderID *uint) error {
	if f.IsDeleted() {
		return fmt.Errorf("cannot move a deleted file")
	}
	f.folderID = folderID
	f.updatedAt = time.Now().UTC()
	return nil
}

func (f *File) SoftDelete() error {
	if f.IsDeleted() {
		return fmt.Errorf("file is already deleted")
	}
	now := time.Now().UTC()
	f.deletedAt = &now
	f.updatedAt = now
	return nil
}

// Facts returns the fields drive insights are computed from.
func (f *File) Facts() insight.FileFacts {
	return insight.FileFacts{
		Filename:   f.filename,
		Size:       f.fileSize,
		Category:   f.aiCategory,
		Tags:       f.AISuggestedTags(),
		IsFavorite: f.isFavorite,
	}
}
