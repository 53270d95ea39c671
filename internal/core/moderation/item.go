package moderation

import "time"

// ContentType discriminates the two moderated content kinds
type ContentType string

const (
	ContentTypePost    ContentType = "post"
	ContentTypeComment ContentType = "comment"
)

// Valid reports whether the content type is known
func (ct ContentType) Valid() bool {
	return ct == ContentTypePost || ct == ContentTypeComment
}

// Status is a content item's moderation state
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether the status is one of the known moderation states
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Resolved reports whether the item has left the pending state
func (s Status) Resolved() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether the transition is structurally legal.
// Pending items resolve to approved or rejected; a resolved item may only
// return to pending via an explicit resubmission.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved, StatusRejected:
		return to == StatusPending
	}
	return false
}

// Decision is an admin action resolving a pending item
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Valid reports whether the decision is approve or reject
func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// TargetStatus returns the status a decision resolves an item to
func (d Decision) TargetStatus() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// Item is a moderated content item (post or comment).
// Title carries the post title, or a body excerpt for comments.
type Item struct {
	ID             int64       `json:"id"`
	ContentType    ContentType `json:"content_type"`
	AuthorID       int64       `json:"author_id"`
	PostID         *int64      `json:"post_id,omitempty"`
	Title          string      `json:"title"`
	Body           string      `json:"body"`
	Status         Status      `json:"status"`
	ModerationNote *string     `json:"moderation_note,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// DecideRequest is the input to a moderation decision
type DecideRequest struct {
	ContentType ContentType
	ItemID      int64
	Decision    Decision
	Note        string
}

// ListParams selects a page of items
type ListParams struct {
	Page    int
	PerPage int
	Search  string
}
