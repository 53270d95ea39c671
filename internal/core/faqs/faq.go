package faqs

import "time"

// FAQ is a knowledge-base entry
type FAQ struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListParams selects a page of FAQs
type ListParams struct {
	Page    int
	PerPage int
	Search  string
}
