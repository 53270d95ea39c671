package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/stats"
)

type postgresStatsRepo struct {
	db *sql.DB
}

// NewStatsRepository creates a PostgreSQL dashboard-statistics repository
func NewStatsRepository(db *sql.DB) stats.Repository {
	return &postgresStatsRepo{db: db}
}

// Overview aggregates the dashboard's headline counts in one round trip
func (r *postgresStatsRepo) Overview(ctx context.Context) (*stats.Overview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM posts WHERE status = 'pending'),
			(SELECT COUNT(*) FROM posts WHERE status = 'approved'),
			(SELECT COUNT(*) FROM posts WHERE status = 'rejected'),
			(SELECT COUNT(*) FROM comments WHERE status = 'pending'),
			(SELECT COUNT(*) FROM comments WHERE status = 'approved'),
			(SELECT COUNT(*) FROM comments WHERE status = 'rejected'),
			(SELECT COUNT(*) FROM messages WHERE status = 'unread'),
			(SELECT COUNT(*) FROM messages WHERE status = 'responded'),
			(SELECT COUNT(*) FROM faqs)
	`

	o := &stats.Overview{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&o.TotalUsers,
		&o.PendingPosts,
		&o.ApprovedPosts,
		&o.RejectedPosts,
		&o.PendingComments,
		&o.ApprovedComments,
		&o.RejectedComments,
		&o.UnreadMessages,
		&o.RespondedMessages,
		&o.TotalFAQs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard overview: %w", err)
	}

	return o, nil
}
