package user

import (
	"errors"
	"fmt"
	"time"

	vo "github.com/conseccomms/conseccomms/internal/domain/user/valueobjects"
)

// ErrInvalidCredentials is returned for any password mismatch so callers
// cannot tell a wrong password from a missing hash.
var ErrInvalidCredentials = errors.New("invalid credentials")

func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}
	if hasher == nil {
		return fmt.Errorf("password hasher is required")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return ErrInvalidCredentials
	}
	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ChangePassword requires the current password before setting a new one.
func (u *User) ChangePassword(currentPassword string, newPassword *vo.Password, hasher PasswordHasher) error {
	if err := u.VerifyPassword(currentPassword, hasher); err != nil {
		return err
	}
	if currentPassword == newPassword.String() {
		return fmt.Errorf("new password must differ from the current password")
	}
	return u.SetPassword(newPassword, hasher)
}

// ChangeEmail requires the current password. Uniqueness is checked by the
// caller against the repository.
func (u *User) ChangeEmail(newEmail *vo.Email, password string, hasher PasswordHasher) error {
	if newEmail == nil {
		return fmt.Errorf("email is required")
	}
	if err := u.VerifyPassword(password, hasher); err != nil {
		return err
	}
	if u.email.Equals(newEmail) {
		return fmt.Errorf("new email must differ from the current email")
	}
	u.email = newEmail
	u.updatedAt = time.Now().UTC()
	return nil
}
