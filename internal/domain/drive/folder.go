package drive

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// RootPath is the parent path of top-level folders.
	RootPath = ""

	maxFolderNameLength = 100
)

type Folder struct {
	id         uint
	userID     uint
	folderName string
	folderPath string
	parentPath string
	createdAt  time.Time
}

// NewFolder derives the folder path as parent_path + "/" + name. The caller
// checks that the parent exists; only the path string links a folder to
// its parent.
func NewFolder(userID uint, name, parentPath string) (*Folder, error) {
	name = strings.TrimSpace(name)
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}
	if utf8.RuneCountInString(name) > maxFolderNameLength {
		return nil, fmt.Errorf("folder name exceeds maximum length of %d characters", maxFolderNameLength)
	}
	if strings.Contains(name, "/") {
		return nil, fmt.Errorf("folder name must not contain '/'")
	}
	if name == "." || name == ".." {
		return nil, fmt.Errorf("invalid folder name: %s", name)
	}

	parentPath = NormalizeParentPath(parentPath)
	return &Folder{
		userID:     userID,
		folderName: name,
		folderPath: JoinPath(parentPath, name),
		parentPath: parentPath,
		createdAt:  time.Now().UTC(),
	}, nil
}

func ReconstructFolder(id, userID uint, name, folderPath, parentPath string, createdAt time.Time) (*Folder, error) {
	if id == 0 {
		return nil, fmt.Errorf("folder ID cannot be zero")
	}
	return &Folder{
		id:         id,
		userID:     userID,
		folderName: name,
		folderPath: folderPath,
		parentPath: parentPath,
		createdAt:  createdAt,
	}, nil
}

func (f *Folder) ID() uint {
	return f.id
}

func (f *Folder) UserID() uint {
	return f.userID
}

func (f *Folder) Name() string {
	return f.folderName
}

func (f *Folder) Path() string {
	return f.folderPath
}

func (f *Folder) ParentPath() string {
	return f.parentPath
}

func (f *Folder) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Folder) IsRoot() bool {
	return f.parentPath == RootPath
}

func (f *Folder) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("folder ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("folder ID cannot be zero")
	}
	f.id = id
	return nil
}

// JoinPath builds a folder path from its parent path and name.
func JoinPath(parentPath, name string) string {
	return parentPath + "/" + name
}

// NormalizeParentPath trims a trailing slash and maps "/" to the root.
func NormalizeParentPath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	return p
}
