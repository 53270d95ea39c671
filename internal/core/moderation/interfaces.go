package moderation

import (
	"context"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/notifications"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// Service defines the moderation engine operations
type Service interface {
	// Decide resolves a pending item to approved or rejected, persists the
	// transition and fans out the author notification. Returns the canonical
	// updated item. A decision on an already-resolved item fails with
	// ErrAlreadyResolved; it is never silently repeated.
	Decide(ctx context.Context, req DecideRequest) (*Item, error)

	// GetByID retrieves a single item
	GetByID(ctx context.Context, ct ContentType, id int64) (*Item, error)

	// ListByStatus retrieves one status bucket's page of items
	ListByStatus(ctx context.Context, ct ContentType, status Status, params ListParams) ([]*Item, pagination.Pagination, error)

	// Delete permanently removes an item
	Delete(ctx context.Context, ct ContentType, id int64) error
}

// Repository defines the data access interface for moderated content.
// The repository exclusively owns durable state; everything above it holds
// projections rebuilt from its responses.
type Repository interface {
	// GetByID retrieves an item by id
	GetByID(ctx context.Context, ct ContentType, id int64) (*Item, error)

	// UpdateStatus transitions an item from one status to another.
	// Compare-and-set on the current status: if the item raced to a
	// different status, returns ErrAlreadyResolved. Returns the canonical
	// row with the server-assigned updated_at.
	UpdateStatus(ctx context.Context, ct ContentType, id int64, from, to Status, note *string) (*Item, error)

	// ListByStatus retrieves a page of items in a status, newest first
	ListByStatus(ctx context.Context, ct ContentType, status Status, params ListParams) ([]*Item, pagination.Pagination, error)

	// Delete permanently removes an item
	Delete(ctx context.Context, ct ContentType, id int64) error
}

// Notifier dispatches the author notification for a decision.
// Implemented by notifications.Dispatcher.
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, kind notifications.Kind, payload notifications.Payload) (*notifications.Notification, error)
}
