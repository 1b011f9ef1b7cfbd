package dto

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/domain/user"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type UserDTO struct {
	ID               uint      `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Role             string    `json:"role"`
	SubscriptionPlan string    `json:"subscription_plan"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User        *UserDTO `json:"user"`
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:               u.ID(),
		Email:            u.Email().String(),
		FullName:         u.FullName(),
		Role:             u.Role().String(),
		SubscriptionPlan: u.SubscriptionPlan().String(),
		CreatedAt:        u.CreatedAt(),
		UpdatedAt:        u.UpdatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []UserDTO {
	return mapper.MapSlice(users, func(u *user.User) UserDTO {
		return *ToUserDTO(u)
	})
}
