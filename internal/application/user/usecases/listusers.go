package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/user/dto"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

type ListUsersQuery struct {
	Email     string
	Role      string
	Plan      string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) (*commondto.ListResult[dto.UserDTO], error) {
	filter := user.ListFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
		},
		Email: q.Email,
		Role:  q.Role,
		Plan:  q.Plan,
	}
	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}
	return commondto.NewListResult(dto.ToUserDTOs(users), total, q.Page, filter.Limit()), nil
}

var exportHeader = []string{"Full Name", "Email", "Monthly Revenue"}

type ExportUsersUseCase struct {
	userRepo user.Repository
	revenue  PlanRevenueFunc
	logger   logger.Interface
}

func NewExportUsersUseCase(userRepo user.Repository, revenue PlanRevenueFunc, logger logger.Interface) *ExportUsersUseCase {
	return &ExportUsersUseCase{
		userRepo: userRepo,
		revenue:  revenue,
		logger:   logger,
	}
}

// Execute writes every user as CSV. Fields containing separators, quotes or
// newlines are quoted by the csv writer.
func (uc *ExportUsersUseCase) Execute(ctx context.Context, w io.Writer) error {
	users, err := uc.userRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load users for export", "error", err)
		return errors.NewInternalError("failed to export users")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, u := range users {
		record := []string{
			u.FullName(),
			u.Email().String(),
			fmt.Sprintf("$%d", uc.revenue(u.SubscriptionPlan().String())),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	uc.logger.Infow("users exported", "count", len(users))
	return nil
}
