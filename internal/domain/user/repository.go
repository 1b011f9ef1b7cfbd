package user

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/shared/query"
)

// Repository returns (nil, nil) from lookups when no user matches.
type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	// ListAll is used by the CSV export and is ordered by id.
	ListAll(ctx context.Context) ([]*User, error)
}

type ListFilter struct {
	query.BaseFilter
	Email string
	Role  string
	Plan  string
}
