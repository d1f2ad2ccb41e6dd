package models

// PackingItem represents one item on the packing checklist
type PackingItem struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"` // South, North, East, West, All
	Packed bool   `json:"packed"`
	Notes  string `json:"notes,omitempty"`
}

// CreatePackingItemRequest is the request body for adding a packing item
type CreatePackingItemRequest struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// PackingSeed is one entry of the YAML seed template shipped in configs/
type PackingSeed struct {
	Region string   `yaml:"region"`
	Items  []string `yaml:"items"`
}
