package usecases

import (
	"context"
	"strings"

	"github.com/conseccomms/conseccomms/internal/application/user/dto"
	"github.com/conseccomms/conseccomms/internal/domain/user"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

const invalidCredentialsMessage = "invalid email or password"

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher user.PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute returns the same error for an unknown email and a wrong password.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if err := u.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())
	return issueSession(uc.tokens, uc.logger, u)
}
