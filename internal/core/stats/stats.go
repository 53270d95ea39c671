package stats

// Overview holds the dashboard's headline counts
type Overview struct {
	TotalUsers        int `json:"total_users"`
	PendingPosts      int `json:"pending_posts"`
	ApprovedPosts     int `json:"approved_posts"`
	RejectedPosts     int `json:"rejected_posts"`
	PendingComments   int `json:"pending_comments"`
	ApprovedComments  int `json:"approved_comments"`
	RejectedComments  int `json:"rejected_comments"`
	UnreadMessages    int `json:"unread_messages"`
	RespondedMessages int `json:"responded_messages"`
	TotalFAQs         int `json:"total_faqs"`
}
