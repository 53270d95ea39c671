package messages

import "time"

// Status is a contact message's workflow state, ordered
// unread < read < responded. Responded is terminal.
type Status string

const (
	StatusUnread    Status = "unread"
	StatusRead      Status = "read"
	StatusResponded Status = "responded"
)

// statusRank orders statuses for the monotonic-transition check
var statusRank = map[Status]int{
	StatusUnread:    0,
	StatusRead:      1,
	StatusResponded: 2,
}

// Valid reports whether the status is one of the known workflow states
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Behind reports whether s is earlier in the workflow than other.
// Setting a message back to an earlier status is an illegal transition;
// unread may jump straight to responded (a reply implies both).
func (s Status) Behind(other Status) bool {
	return statusRank[s] < statusRank[other]
}

// Message is an inbound contact message
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	Status     Status    `json:"status"`
	AdminReply *string   `json:"admin_reply,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListParams selects a page of messages
type ListParams struct {
	Page    int
	PerPage int
	Status  Status // empty means all statuses
	Search  string
}
