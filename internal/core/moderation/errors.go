package moderation

import "errors"

var (
	// ErrItemNotFound indicates the content item doesn't exist
	ErrItemNotFound = errors.New("content item not found")

	// ErrAlreadyResolved indicates the item already left the pending state.
	// Surfaced instead of a silent no-op so callers can reconcile a stale
	// cache, and so a decision is never applied (or notified) twice.
	ErrAlreadyResolved = errors.New("content item already resolved")

	// ErrInvalidContentType indicates an unknown content type
	ErrInvalidContentType = errors.New("invalid content type: must be 'post' or 'comment'")

	// ErrInvalidDecision indicates the decision is not approve or reject
	ErrInvalidDecision = errors.New("invalid decision: must be 'approve' or 'reject'")

	// ErrInvalidStatus indicates an unknown moderation status
	ErrInvalidStatus = errors.New("invalid status: must be 'pending', 'approved' or 'rejected'")

	// ErrNotAuthorized indicates the caller lacks moderation rights
	ErrNotAuthorized = errors.New("not authorized")
)
