package notifications

import "errors"

var (
	// ErrInvalidKind indicates the notification kind is not a known moderation kind
	ErrInvalidKind = errors.New("invalid notification kind")

	// ErrAlreadyDispatched indicates a notification for this decision was already persisted
	ErrAlreadyDispatched = errors.New("notification already dispatched")

	// ErrNotificationNotFound indicates the requested notification doesn't exist
	ErrNotificationNotFound = errors.New("notification not found")
)
