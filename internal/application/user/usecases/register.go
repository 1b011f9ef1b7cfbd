package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/conseccomms/conseccomms/internal/application/user/dto"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	vo "github.com/conseccomms/conseccomms/internal/domain/user/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	FullName string
	Password string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher user.PasswordHasher, tokens TokenIssuer, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute creates the account and signs the user in.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResponse, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	u, err := user.NewUser(email, cmd.FullName, password, uc.hasher)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	uc.logger.Infow("user registered", "user_id", u.ID())
	return issueSession(uc.tokens, uc.logger, u)
}

func issueSession(tokens TokenIssuer, log logger.Interface, u *user.User) (*dto.AuthResponse, error) {
	pair, err := tokens.Generate(u.ID(), uuid.NewString(), u.Role())
	if err != nil {
		log.Errorw("failed to generate token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}
	return &dto.AuthResponse{
		User:        dto.ToUserDTO(u),
		AccessToken: pair.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   pair.ExpiresIn,
	}, nil
}
