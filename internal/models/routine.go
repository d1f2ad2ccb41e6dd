package models

import "time"

// RoutineItem represents a recurring habit the user tracks while travelling
type RoutineItem struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	IsDaily      bool      `json:"isDaily"`
	ReminderCron string    `json:"reminderCron,omitempty"` // optional 5-field cron expression
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateRoutineItemRequest is the request body for creating a routine item
type CreateRoutineItemRequest struct {
	Title        string `json:"title"`
	IsDaily      *bool  `json:"isDaily,omitempty"` // defaults to true
	ReminderCron string `json:"reminderCron,omitempty"`
}

// RoutineCheck marks a routine item done for a given day
type RoutineCheck struct {
	ID     string `json:"id"`
	ItemID string `json:"itemId"`
	DoneOn string `json:"doneOn"` // YYYY-MM-DD
	Done   bool   `json:"done"`
}
