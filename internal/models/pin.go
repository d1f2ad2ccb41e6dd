package models

import "time"

// Pin statuses
const (
	PinStatusPlanned = "planned"
	PinStatusVisited = "visited"
)

// Pin represents a travel destination on the user's map
type Pin struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Status      string    `json:"status"` // "planned" | "visited"
	Lat         *float64  `json:"lat,omitempty"`
	Lng         *float64  `json:"lng,omitempty"`
	Address     string    `json:"address,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	ScheduledOn string    `json:"scheduledOn,omitempty"` // YYYY-MM-DD
	VisitedOn   string    `json:"visitedOn,omitempty"`   // YYYY-MM-DD
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreatePinRequest is the request body for creating a pin
type CreatePinRequest struct {
	Title       string   `json:"title"`
	Status      string   `json:"status,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Address     string   `json:"address,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	ScheduledOn string   `json:"scheduledOn,omitempty"`
	VisitedOn   string   `json:"visitedOn,omitempty"`
}

// UpdatePinRequest is a partial pin update
type UpdatePinRequest struct {
	Title       *string  `json:"title,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	ScheduledOn *string  `json:"scheduledOn,omitempty"`
	VisitedOn   *string  `json:"visitedOn,omitempty"`
}
