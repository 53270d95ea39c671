package messages

import (
	"context"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// Service defines the message workflow engine operations
type Service interface {
	// SetStatus moves a message forward along unread → read → responded.
	// Backward moves fail with ErrInvalidTransition; setting the current
	// status again succeeds without touching the row.
	SetStatus(ctx context.Context, id int64, status Status) (*Message, error)

	// Reply persists an admin reply and marks the message responded in one
	// step. The reply itself is the sender's notification; there is no
	// separate fan-out.
	Reply(ctx context.Context, id int64, body string) (*Message, error)

	// GetByID retrieves a single message
	GetByID(ctx context.Context, id int64) (*Message, error)

	// List retrieves a page of messages, optionally filtered by status
	List(ctx context.Context, params ListParams) ([]*Message, pagination.Pagination, error)

	// UnreadCount returns the number of unread messages
	UnreadCount(ctx context.Context) (int, error)
}

// Repository defines the data access interface for contact messages
type Repository interface {
	// GetByID retrieves a message by id
	GetByID(ctx context.Context, id int64) (*Message, error)

	// UpdateStatus transitions a message from one status to another.
	// Compare-and-set on the current status: if the message raced to a
	// different status, the update writes nothing and the race is resolved
	// against the monotonic ordering (same target is a no-op, anything else
	// is ErrInvalidTransition). Returns the canonical row.
	UpdateStatus(ctx context.Context, id int64, from, to Status) (*Message, error)

	// Reply stores the admin reply and sets status to responded atomically
	Reply(ctx context.Context, id int64, body string) (*Message, error)

	// List retrieves a page of messages, newest first
	List(ctx context.Context, params ListParams) ([]*Message, pagination.Pagination, error)

	// UnreadCount returns the number of unread messages
	UnreadCount(ctx context.Context) (int, error)
}
