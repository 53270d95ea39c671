package users

import (
	"context"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// Service defines admin user-management operations
type Service interface {
	// List retrieves a page of users with contribution counts
	List(ctx context.Context, params ListParams) ([]*User, pagination.Pagination, error)

	// GetByID retrieves a single user
	GetByID(ctx context.Context, id int64) (*User, error)

	// Update applies the admin-editable fields and returns the canonical row
	Update(ctx context.Context, id int64, req UpdateRequest) (*User, error)

	// Delete permanently removes a user account
	Delete(ctx context.Context, id int64) error
}

// Repository defines the data access interface for user accounts
type Repository interface {
	List(ctx context.Context, params ListParams) ([]*User, pagination.Pagination, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*User, error)
	Delete(ctx context.Context, id int64) error
}
