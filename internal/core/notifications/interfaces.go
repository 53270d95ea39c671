package notifications

import (
	"context"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// Repository defines the data access interface for notifications
type Repository interface {
	// Create persists a notification record.
	// At-most-once per decision: a second insert for the same
	// (recipient, kind, subject) returns ErrAlreadyDispatched.
	Create(ctx context.Context, n *Notification) error

	// ListForRecipient retrieves a recipient's notifications, newest first
	ListForRecipient(ctx context.Context, recipientID int64, page, perPage int) ([]*Notification, pagination.Pagination, error)
}

// Mailer delivers the mail representation of a notification.
// Delivery is best-effort; failures never affect the persisted record.
type Mailer interface {
	Send(ctx context.Context, recipientID int64, mail *MailMessage) error
}
