package users

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/validation"
)

type userService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user-management service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// List retrieves a page of users with contribution counts
func (s *userService) List(ctx context.Context, params ListParams) ([]*User, pagination.Pagination, error) {
	params.Page, params.PerPage = pagination.Normalize(params.Page, params.PerPage)
	params.Search = strings.TrimSpace(params.Search)
	return s.repo.List(ctx, params)
}

// GetByID retrieves a single user
func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the admin-editable fields after validating them
func (s *userService) Update(ctx context.Context, id int64, req UpdateRequest) (*User, error) {
	v := validation.New()
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		v.Add("name", "name cannot be empty")
	}
	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		v.Add("email", "must be a valid email address")
	}
	if req.Role != nil && !req.Role.Valid() {
		v.Add("role", "must be 'user', 'moderator' or 'admin'")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user", id, "role", user.Role)
	return user, nil
}

// Delete permanently removes a user account
func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user", id)
	return nil
}
