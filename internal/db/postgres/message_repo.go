package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/messages"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

type postgresMessageRepo struct {
	db *sql.DB
}

// NewMessageRepository creates a PostgreSQL contact-message repository
func NewMessageRepository(db *sql.DB) messages.Repository {
	return &postgresMessageRepo{db: db}
}

const messageColumns = "id, sender_id, subject, content, status, admin_reply, created_at, updated_at"

// GetByID retrieves a message by id
func (r *postgresMessageRepo) GetByID(ctx context.Context, id int64) (*messages.Message, error) {
	query := fmt.Sprintf("SELECT %s FROM messages WHERE id = $1", messageColumns)

	msg, err := scanMessage(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, messages.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return msg, nil
}

// UpdateStatus transitions a message between workflow statuses.
// Compare-and-set on the current status: a concurrent session that already
// advanced the message makes this a zero-row update, and the race resolves
// against the monotonic ordering instead of demoting the row.
func (r *postgresMessageRepo) UpdateStatus(ctx context.Context, id int64, from, to messages.Status) (*messages.Message, error) {
	query := fmt.Sprintf(`
		UPDATE messages
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING %s
	`, messageColumns)

	msg, err := scanMessage(r.db.QueryRowContext(ctx, query, to, id, from))
	if err == sql.ErrNoRows {
		current, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		if current.Status == to {
			// Another session already landed the same transition
			return current, nil
		}
		return nil, messages.ErrInvalidTransition
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update message status: %w", err)
	}

	return msg, nil
}

// Reply stores the admin reply and flips the message to responded in one statement
func (r *postgresMessageRepo) Reply(ctx context.Context, id int64, body string) (*messages.Message, error) {
	query := fmt.Sprintf(`
		UPDATE messages
		SET admin_reply = $1, status = 'responded', updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, messageColumns)

	msg, err := scanMessage(r.db.QueryRowContext(ctx, query, body, id))
	if err == sql.ErrNoRows {
		return nil, messages.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store reply: %w", err)
	}

	return msg, nil
}

// List retrieves a page of messages, newest first, optionally filtered by status
func (r *postgresMessageRepo) List(ctx context.Context, params messages.ListParams) ([]*messages.Message, pagination.Pagination, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM messages
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR subject ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
	`
	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM messages
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR subject ILIKE '%%' || $2 || '%%' OR content ILIKE '%%' || $2 || '%%')
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`, messageColumns)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, string(params.Status), params.Search).Scan(&total); err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to count messages: %w", err)
	}

	meta := pagination.New(params.Page, params.PerPage, total)

	rows, err := r.db.QueryContext(ctx, listQuery, string(params.Status), params.Search, meta.PerPage, meta.Offset())
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var msgs []*messages.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, pagination.Pagination{}, fmt.Errorf("failed to scan message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return msgs, meta, nil
}

// UnreadCount returns the number of unread messages
func (r *postgresMessageRepo) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages WHERE status = 'unread'").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func scanMessage(row rowScanner) (*messages.Message, error) {
	msg := &messages.Message{}
	err := row.Scan(
		&msg.ID,
		&msg.SenderID,
		&msg.Subject,
		&msg.Content,
		&msg.Status,
		&msg.AdminReply,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return msg, nil
}
