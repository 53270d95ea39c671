package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// userSelect hydrates contribution counts alongside the account row
const userSelect = `
	SELECT
		u.id, u.name, u.email, u.role, COALESCE(u.bio, ''),
		(SELECT COUNT(*) FROM posts p WHERE p.author_id = u.id),
		(SELECT COUNT(*) FROM comments c WHERE c.author_id = u.id),
		u.created_at, u.updated_at
	FROM users u
`

// List retrieves a page of users with contribution counts
func (r *postgresUserRepo) List(ctx context.Context, params users.ListParams) ([]*users.User, pagination.Pagination, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM users u
		WHERE ($1 = '' OR u.name ILIKE '%' || $1 || '%' OR u.email ILIKE '%' || $1 || '%')
	`

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, params.Search).Scan(&total); err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to count users: %w", err)
	}

	meta := pagination.New(params.Page, params.PerPage, total)

	rows, err := r.db.QueryContext(ctx, userSelect+`
		WHERE ($1 = '' OR u.name ILIKE '%' || $1 || '%' OR u.email ILIKE '%' || $1 || '%')
		ORDER BY u.created_at DESC, u.id DESC
		LIMIT $2 OFFSET $3
	`, params.Search, meta.PerPage, meta.Offset())
	if err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var list []*users.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, pagination.Pagination{}, fmt.Errorf("failed to scan user: %w", err)
		}
		list = append(list, user)
	}
	if err := rows.Err(); err != nil {
		return nil, pagination.Pagination{}, fmt.Errorf("failed to iterate users: %w", err)
	}

	return list, meta, nil
}

// GetByID retrieves a single user with contribution counts
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, userSelect+" WHERE u.id = $1", id))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Update applies the admin-editable fields, leaving nil fields untouched
func (r *postgresUserRepo) Update(ctx context.Context, id int64, req users.UpdateRequest) (*users.User, error) {
	query := `
		UPDATE users
		SET
			name = COALESCE($1, name),
			email = COALESCE($2, email),
			role = COALESCE($3, role),
			bio = COALESCE($4, bio),
			updated_at = NOW()
		WHERE id = $5
	`

	var role *string
	if req.Role != nil {
		s := string(*req.Role)
		role = &s
	}

	result, err := r.db.ExecContext(ctx, query, req.Name, req.Email, role, req.Bio, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, users.ErrEmailAlreadyTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, users.ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete permanently removes a user account
func (r *postgresUserRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

func scanUser(row rowScanner) (*users.User, error) {
	user := &users.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Bio,
		&user.PostCount,
		&user.CommentCount,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
