// Package user holds the account aggregate: identity, credentials, role and
// subscription plan.
package user

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/conseccomms/conseccomms/internal/domain/user/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/authorization"
)

const maxFullNameLength = 100

type User struct {
	id               uint
	email            *vo.Email
	fullName         string
	passwordHash     string
	role             authorization.UserRole
	subscriptionPlan vo.SubscriptionPlan
	createdAt        time.Time
	updatedAt        time.Time
}

// PasswordHasher is implemented by the auth infrastructure (bcrypt).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

func NewUser(email *vo.Email, fullName string, password *vo.Password, hasher PasswordHasher) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	name, err := normalizeFullName(fullName)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &User{
		email:            email,
		fullName:         name,
		role:             authorization.RoleUser,
		subscriptionPlan: vo.PlanFree,
		createdAt:        now,
		updatedAt:        now,
	}
	if err := u.SetPassword(password, hasher); err != nil {
		return nil, err
	}
	return u, nil
}

func ReconstructUser(
	id uint,
	email *vo.Email,
	fullName, passwordHash string,
	role authorization.UserRole,
	plan vo.SubscriptionPlan,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !plan.IsValid() {
		plan = vo.PlanFree
	}

	return &User{
		id:               id,
		email:            email,
		fullName:         fullName,
		passwordHash:     passwordHash,
		role:             authorization.ParseUserRole(role.String()),
		subscriptionPlan: plan,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) SubscriptionPlan() vo.SubscriptionPlan {
	return u.subscriptionPlan
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateFullName(fullName string) error {
	name, err := normalizeFullName(fullName)
	if err != nil {
		return err
	}
	u.fullName = name
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ChangePlan(plan vo.SubscriptionPlan) error {
	if !plan.IsValid() {
		return fmt.Errorf("invalid subscription plan: %s", plan)
	}
	u.subscriptionPlan = plan
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) PromoteToAdmin() {
	u.role = authorization.RoleAdmin
	u.updatedAt = time.Now().UTC()
}

func normalizeFullName(fullName string) (string, error) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "", fmt.Errorf("full name is required")
	}
	if utf8.RuneCountInString(name) > maxFullNameLength {
		return "", fmt.Errorf("full name exceeds maximum length of %d characters", maxFullNameLength)
	}
	return name, nil
}
