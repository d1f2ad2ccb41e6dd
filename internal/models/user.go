package models

import "time"

// User represents a registered account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // "admin" | "user"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserResponse is the user shape returned to clients (no credentials)
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse strips credential fields
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// UserPreferences holds per-user settings stored in MongoDB (optional subsystem)
type UserPreferences struct {
	UserID          string    `bson:"userId" json:"userId"`
	Currency        string    `bson:"currency" json:"currency"`               // default "INR"
	WaterGoalMl     int       `bson:"waterGoalMl" json:"waterGoalMl"`         // daily target, default 2000
	HomeRegion      string    `bson:"homeRegion" json:"homeRegion"`           // South/North/East/West/All
	AssistantModel  string    `bson:"assistantModel,omitempty" json:"assistantModel,omitempty"`
	DigestEnabled   bool      `bson:"digestEnabled" json:"digestEnabled"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UpdatePreferencesRequest is a partial preferences update
type UpdatePreferencesRequest struct {
	Currency       *string `json:"currency,omitempty"`
	WaterGoalMl    *int    `json:"waterGoalMl,omitempty"`
	HomeRegion     *string `json:"homeRegion,omitempty"`
	AssistantModel *string `json:"assistantModel,omitempty"`
	DigestEnabled  *bool   `json:"digestEnabled,omitempty"`
}
