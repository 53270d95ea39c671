package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/faqs"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

type postgresFAQRepo struct {
	db *sql.DB
}

// NewFAQRepository creates a PostgreSQL FAQ repository
func NewFAQRepository(db *sql.DB) faqs.Repository {
	return &postgresFAQRepo{db: db}
}

// Create inserts a new FAQ
func (r *postgresFAQRepo) Create(ctx context.Context, faq *faqs.FAQ) (*faqs.FAQ, error) {
	query := `
		INSERT INTO faqs (question, answer, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, question, answer, created_at, updated_at
	`

	created, err := scanFAQ(r.db.QueryRowContext(ctx, query, faq.Question, faq.Answer))
	if err != nil {
		return nil, fmt.Errorf("failed to insert faq: %w", err)
	}

	return created, nil
}

// Update modifies an existing FAQ
func (r *postgresFAQRepo) Update(ctx context.Context, faq *faqs.FAQ) (*faqs.FAQ, error) {
	query := `
		UPDATE faqs
		SET question = $1, answer = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, question, answer, created_at, updated_at
	`

	updated, err := scanFAQ(r.db.QueryRowContext(ctx, query, faq.Question, faq.Answer, faq.ID))
	if err == sql.ErrNoRows {
		return nil, faqs.ErrFAQNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}

	return updated, nil
}

// GetByID retrieves a FAQ by id
func (r *postgresFAQRepo) GetByID(ctx context.Context, id int64) (*faqs.FAQ, error) {
	query := "SELECT id, question, answer, created_at, updated_at FROM faqs WHERE id = $1"

	faq, err := scanFAQ(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, faqs.ErrFAQNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}

	return faq, nil
}

// List retrieves a page of FAQs, newest first
func (r *postgresFAQRepo) List(ctx context.Context, params faqs.ListParams) ([]*faqs.FAQ, pagination.Pagination, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM faqs
		WHERE ($1 = '' OR question ILIKE '%' || $1 || '%' OR answer ILIKE '%' || $1 || '%')
	`

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, params.Search).Scan(&total); err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to count faqs: %w", err)
	}

	meta := pagination.New(params.Page, params.PerPage, total)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, question, answer, created_at, updated_at
		FROM faqs
		WHERE ($1 = '' OR question ILIKE '%' || $1 || '%' OR answer ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, params.Search, meta.PerPage, meta.Offset())
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	var list []*faqs.FAQ
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, pagination.Pagination{}, fmt.Errorf("failed to scan faq: %w", err)
		}
		list = append(list, faq)
	}
	if err := rows.Err(); err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to iterate faqs: %w", err)
	}

	return list, meta, nil
}

// Delete removes a FAQ
func (r *postgresFAQRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM faqs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return faqs.ErrFAQNotFound
	}

	return nil
}

func scanFAQ(row rowScanner) (*faqs.FAQ, error) {
	faq := &faqs.FAQ{}
	err := row.Scan(&faq.ID, &faq.Question, &faq.Answer, &faq.CreatedAt, &faq.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return faq, nil
}
