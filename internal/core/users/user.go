package users

import "time"

// Role is a user's platform role
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is known
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User is a platform account as seen by the admin layer, with
// contribution counts hydrated for the user-management list.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	PostCount    int       `json:"post_count"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateRequest carries the admin-editable user fields; nil means unchanged
type UpdateRequest struct {
	Name  *string
	Email *string
	Role  *Role
	Bio   *string
}

// ListParams selects a page of users
type ListParams struct {
	Page    int
	PerPage int
	Search  string
}
