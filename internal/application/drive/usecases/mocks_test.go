package usecases

import (
	"context"

	notificationdto "github.com/conseccomms/conseccomms/internal/application/notification/dto"
	notificationUsecases "github.com/conseccomms/conseccomms/internal/application/notification/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/drive"
)

type mockFileRepository struct {
	CreateFunc  func(ctx context.Context, f *drive.File) error
	UpdateFunc  func(ctx context.Context, f *drive.File) error
	GetByIDFunc func(ctx context.Context, userID, fileID uint) (*drive.File, error)
	ListFunc    func(ctx context.Context, userID uint, filter drive.FileFilter) ([]*drive.File, int64, error)
	ListAllFunc func(ctx context.Context, userID uint) ([]*drive.File, error)

	updated []*drive.File
}

func (m *mockFileRepository) Create(ctx context.Context, f *drive.File) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return f.SetID(1)
}

func (m *mockFileRepository) Update(ctx context.Context, f *drive.File) error {
	m.updated = append(m.updated, f)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockFileRepository) GetByID(ctx context.Context, userID, fileID uint) (*drive.File, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, fileID)
	}
	return nil, nil
}

func (m *mockFileRepository) List(ctx context.Context, userID uint, filter drive.FileFilter) ([]*drive.File, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return nil, 0, nil
}

func (m *mockFileRepository) ListAll(ctx context.Context, userID uint) ([]*drive.File, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, userID)
	}
	return nil, nil
}

type mockFolderRepository struct {
	CreateFunc       func(ctx context.Context, f *drive.Folder) error
	GetByIDFunc      func(ctx context.Context, userID, folderID uint) (*drive.Folder, error)
	GetByPathFunc    func(ctx context.Context, userID uint, folderPath string) (*drive.Folder, error)
	ExistsByPathFunc func(ctx context.Context, userID uint, folderPath string) (bool, error)
	ListFunc         func(ctx context.Context, userID uint, parentPath *string) ([]*drive.Folder, error)
}

func (m *mockFolderRepository) Create(ctx context.Context, f *drive.Folder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return f.SetID(1)
}

func (m *mockFolderRepository) GetByID(ctx context.Context, userID, folderID uint) (*drive.Folder, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, folderID)
	}
	return nil, nil
}

func (m *mockFolderRepository) GetByPath(ctx context.Context, userID uint, folderPath string) (*drive.Folder, error) {
	if m.GetByPathFunc != nil {
		return m.GetByPathFunc(ctx, userID, folderPath)
	}
	return nil, nil
}

func (m *mockFolderRepository) ExistsByPath(ctx context.Context, userID uint, folderPath string) (bool, error) {
	if m.ExistsByPathFunc != nil {
		return m.ExistsByPathFunc(ctx, userID, folderPath)
	}
	return false, nil
}

func (m *mockFolderRepository) List(ctx context.Context, userID uint, parentPath *string) ([]*drive.Folder, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, parentPath)
	}
	return nil, nil
}

type mockNotifier struct {
	commands []notificationUsecases.CreateNotificationCommand
}

func (m *mockNotifier) Execute(ctx context.Context, cmd notificationUsecases.CreateNotificationCommand) *notificationdto.NotificationDTO {
	m.commands = append(m.commands, cmd)
	return &notificationdto.NotificationDTO{ID: uint(len(m.commands))}
}
