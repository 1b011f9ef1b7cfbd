package usecases

import (
	"context"
	stderrors "errors"

	"github.com/conseccomms/conseccomms/internal/application/user/dto"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	vo "github.com/conseccomms/conseccomms/internal/domain/user/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type ChangeEmailCommand struct {
	UserID   uint
	NewEmail string
	Password string
}

type ChangeEmailUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewChangeEmailUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *ChangeEmailUseCase {
	return &ChangeEmailUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangeEmailUseCase) Execute(ctx context.Context, cmd ChangeEmailCommand) (*dto.UserDTO, error) {
	email, err := vo.NewEmail(cmd.NewEmail)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	u, err := loadUser(ctx, uc.userRepo, uc.logger, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if !u.Email().Equals(email) {
		taken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
		if err != nil {
			uc.logger.Errorw("failed to check email", "user_id", cmd.UserID, "error", err)
			return nil, errors.NewInternalError("failed to change email")
		}
		if taken {
			return nil, errors.NewConflictError("email is already registered")
		}
	}

	if err := u.ChangeEmail(email, cmd.Password, uc.hasher); err != nil {
		if stderrors.Is(err, user.ErrInvalidCredentials) {
			return nil, errors.NewUnauthorizedError("password is incorrect")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update email", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to change email")
	}
	uc.logger.Infow("email changed", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
