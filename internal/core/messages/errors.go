package messages

import "errors"

var (
	// ErrMessageNotFound indicates the requested message doesn't exist
	ErrMessageNotFound = errors.New("message not found")

	// ErrInvalidStatus indicates an unknown message status
	ErrInvalidStatus = errors.New("invalid message status: must be 'unread', 'read' or 'responded'")

	// ErrInvalidTransition indicates the requested status is behind the current one
	ErrInvalidTransition = errors.New("invalid status transition: message status cannot move backward")
)
