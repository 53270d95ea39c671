package stats

import (
	"context"
	"log/slog"
)

// Repository defines the aggregation queries behind the dashboard
type Repository interface {
	Overview(ctx context.Context) (*Overview, error)
}

// Service exposes read-only dashboard statistics
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type statsService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new stats service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &statsService{
		repo:   repo,
		logger: logger,
	}
}

// Overview returns the dashboard's headline counts
func (s *statsService) Overview(ctx context.Context) (*Overview, error) {
	return s.repo.Overview(ctx)
}
