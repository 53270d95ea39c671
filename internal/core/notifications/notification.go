package notifications

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies what a notification is about
type Kind string

const (
	KindPostApproved    Kind = "post_approved"
	KindPostRejected    Kind = "post_rejected"
	KindCommentApproved Kind = "comment_approved"
	KindCommentRejected Kind = "comment_rejected"
)

// Valid reports whether the kind is one of the known moderation kinds
func (k Kind) Valid() bool {
	switch k {
	case KindPostApproved, KindPostRejected, KindCommentApproved, KindCommentRejected:
		return true
	}
	return false
}

// rejected reports whether the kind carries a moderation note
func (k Kind) rejected() bool {
	return k == KindPostRejected || k == KindCommentRejected
}

// Payload is the immutable data attached to a notification
type Payload struct {
	SubjectID int64   `json:"subject_id"`
	Title     string  `json:"title"`
	Note      *string `json:"admin_note,omitempty"`
	Message   string  `json:"message"`
}

// Notification is a durable record of a moderation decision for the affected user.
// Created exactly once per decision, never mutated.
type Notification struct {
	ID          uuid.UUID `json:"id"`
	RecipientID int64     `json:"recipient_id"`
	Kind        Kind      `json:"kind"`
	Payload     Payload   `json:"payload"`
	CreatedAt   time.Time `json:"created_at"`
}

// buildMessage renders the human-readable summary stored in the payload
func buildMessage(kind Kind, title string, note *string) string {
	var msg string
	switch kind {
	case KindPostApproved:
		msg = fmt.Sprintf("Your post %q has been approved.", title)
	case KindPostRejected:
		msg = fmt.Sprintf("Your post %q has been rejected.", title)
	case KindCommentApproved:
		msg = fmt.Sprintf("Your comment %q has been approved.", title)
	case KindCommentRejected:
		msg = fmt.Sprintf("Your comment %q has been rejected.", title)
	}
	if kind.rejected() && note != nil && *note != "" {
		msg += " Reason: " + *note
	}
	return msg
}
