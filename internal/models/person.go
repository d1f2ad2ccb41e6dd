package models

// Person represents a contact met while travelling
type Person struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
	WhereMet string `json:"whereMet,omitempty"`
	MetOn    string `json:"metOn,omitempty"` // YYYY-MM-DD
	Notes    string `json:"notes,omitempty"`
}

// CreatePersonRequest is the request body for creating a contact
type CreatePersonRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
	WhereMet string `json:"whereMet,omitempty"`
	MetOn    string `json:"metOn,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
