package models

import "time"

// JournalEntry represents a travel journal entry. Body is treated as markdown
// for the HTML rendering endpoint.
type JournalEntry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Title    string    `json:"title,omitempty"`
	Body     string    `json:"body,omitempty"`
	PinID    string    `json:"pinId,omitempty"`
	TaggedAt time.Time `json:"taggedAt"`
}

// CreateJournalRequest is the request body for creating a journal entry
type CreateJournalRequest struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	PinID string `json:"pinId,omitempty"`
}
