package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/moderation"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// commentTitleLength is how much of a comment body stands in for a title
// in lists and notification payloads
const commentTitleLength = 80

type postgresContentRepo struct {
	db *sql.DB
}

// NewContentRepository creates a PostgreSQL repository for moderated content
func NewContentRepository(db *sql.DB) moderation.Repository {
	return &postgresContentRepo{db: db}
}

// GetByID retrieves a post or comment by id
func (r *postgresContentRepo) GetByID(ctx context.Context, ct moderation.ContentType, id int64) (*moderation.Item, error) {
	var query string
	if ct == moderation.ContentTypePost {
		query = `
			SELECT id, author_id, NULL::bigint, title, body, status, moderation_note, created_at, updated_at
			FROM posts
			WHERE id = $1
		`
	} else {
		query = fmt.Sprintf(`
			SELECT id, author_id, post_id, left(body, %d), body, status, moderation_note, created_at, updated_at
			FROM comments
			WHERE id = $1
		`, commentTitleLength)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id), ct)
	if err == sql.ErrNoRows {
		return nil, moderation.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", ct, err)
	}

	return item, nil
}

// UpdateStatus transitions an item between moderation statuses.
// Compare-and-set on the current status: a concurrent decision that already
// resolved the item makes this a zero-row update, reported as
// ErrAlreadyResolved so the caller can reconcile its cache.
func (r *postgresContentRepo) UpdateStatus(ctx context.Context, ct moderation.ContentType, id int64, from, to moderation.Status, note *string) (*moderation.Item, error) {
	var query string
	if ct == moderation.ContentTypePost {
		query = `
			UPDATE posts
			SET status = $1, moderation_note = $2, updated_at = NOW()
			WHERE id = $3 AND status = $4
			RETURNING id, author_id, NULL::bigint, title, body, status, moderation_note, created_at, updated_at
		`
	} else {
		query = fmt.Sprintf(`
			UPDATE comments
			SET status = $1, moderation_note = $2, updated_at = NOW()
			WHERE id = $3 AND status = $4
			RETURNING id, author_id, post_id, left(body, %d), body, status, moderation_note, created_at, updated_at
		`, commentTitleLength)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, to, note, id, from), ct)
	if err == sql.ErrNoRows {
		// Row absent or status raced; distinguish for the caller
		if _, getErr := r.GetByID(ctx, ct, id); getErr == moderation.ErrItemNotFound {
			return nil, moderation.ErrItemNotFound
		}
		return nil, moderation.ErrAlreadyResolved
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s status: %w", ct, err)
	}

	return item, nil
}

// ListByStatus retrieves one page of items in a status, newest first
func (r *postgresContentRepo) ListByStatus(ctx context.Context, ct moderation.ContentType, status moderation.Status, params moderation.ListParams) ([]*moderation.Item, pagination.Pagination, error) {
	var countQuery, listQuery string
	if ct == moderation.ContentTypePost {
		countQuery = `
			SELECT COUNT(*)
			FROM posts
			WHERE status = $1 AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR body ILIKE '%' || $2 || '%')
		`
		listQuery = `
			SELECT id, author_id, NULL::bigint, title, body, status, moderation_note, created_at, updated_at
			FROM posts
			WHERE status = $1 AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR body ILIKE '%' || $2 || '%')
			ORDER BY created_at DESC, id DESC
			LIMIT $3 OFFSET $4
		`
	} else {
		countQuery = `
			SELECT COUNT(*)
			FROM comments
			WHERE status = $1 AND ($2 = '' OR body ILIKE '%' || $2 || '%')
		`
		listQuery = fmt.Sprintf(`
			SELECT id, author_id, post_id, left(body, %d), body, status, moderation_note, created_at, updated_at
			FROM comments
			WHERE status = $1 AND ($2 = '' OR body ILIKE '%%' || $2 || '%%')
			ORDER BY created_at DESC, id DESC
			LIMIT $3 OFFSET $4
		`, commentTitleLength)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, status, params.Search).Scan(&total); err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to count %ss: %w", ct, err)
	}

	meta := pagination.New(params.Page, params.PerPage, total)

	rows, err := r.db.QueryContext(ctx, listQuery, status, params.Search, meta.PerPage, meta.Offset())
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to list %ss: %w", ct, err)
	}
	defer rows.Close()

	var items []*moderation.Item
	for rows.Next() {
		item, err := scanItem(rows, ct)
		if err != nil {
			return nil, pagination.Pagination{}, fmt.Errorf("failed to scan %s: %w", ct, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to iterate %ss: %w", ct, err)
	}

	return items, meta, nil
}

// Delete permanently removes an item
func (r *postgresContentRepo) Delete(ctx context.Context, ct moderation.ContentType, id int64) error {
	table := "posts"
	if ct == moderation.ContentTypeComment {
		table = "comments"
	}

	result, err := r.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", ct, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return moderation.ErrItemNotFound
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, ct moderation.ContentType) (*moderation.Item, error) {
	item := &moderation.Item{ContentType: ct}
	err := row.Scan(
		&item.ID,
		&item.AuthorID,
		&item.PostID,
		&item.Title,
		&item.Body,
		&item.Status,
		&item.ModerationNote,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}
