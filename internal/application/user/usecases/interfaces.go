package usecases

import (
	"github.com/conseccomms/conseccomms/internal/shared/authorization"
)

// TokenIssuer signs session tokens. Implemented by the JWT service.
type TokenIssuer interface {
	Generate(userID uint, sessionID string, role authorization.UserRole) (*TokenPair, error)
}

type TokenPair struct {
	AccessToken string
	ExpiresIn   int64
}

// PlanRevenueFunc returns the monthly revenue in whole dollars for a plan.
type PlanRevenueFunc func(plan string) int
