package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/notifications"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a PostgreSQL notification repository
func NewNotificationRepository(db *sql.DB) notifications.Repository {
	return &postgresNotificationRepo{db: db}
}

// Create persists a notification record.
// The unique (recipient_id, kind, subject_id) index enforces at-most-once
// persistence per moderation decision; a duplicate insert surfaces as
// ErrAlreadyDispatched instead of writing a second record.
func (r *postgresNotificationRepo) Create(ctx context.Context, n *notifications.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, kind, subject_id, title, admin_note, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx, query,
		n.ID, n.RecipientID, n.Kind,
		n.Payload.SubjectID, n.Payload.Title, n.Payload.Note, n.Payload.Message,
		n.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return notifications.ErrAlreadyDispatched
		}
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// ListForRecipient retrieves a recipient's notifications, newest first
func (r *postgresNotificationRepo) ListForRecipient(ctx context.Context, recipientID int64, page, perPage int) ([]*notifications.Notification, pagination.Pagination, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notifications WHERE recipient_id = $1", recipientID,
	).Scan(&total)
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to count notifications: %w", err)
	}

	meta := pagination.New(page, perPage, total)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recipient_id, kind, subject_id, title, admin_note, message, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, recipientID, meta.PerPage, meta.Offset())
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var list []*notifications.Notification
	for rows.Next() {
		n := &notifications.Notification{}
		err := rows.Scan(
			&n.ID, &n.RecipientID, &n.Kind,
			&n.Payload.SubjectID, &n.Payload.Title, &n.Payload.Note, &n.Payload.Message,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, pagination.Pagination{}, fmt.Errorf("failed to scan notification: %w", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return list, meta, nil
}
