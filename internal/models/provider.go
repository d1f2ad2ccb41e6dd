package models

import "time"

// LLMProvider represents an OpenAI-compatible completion API provider
type LLMProvider struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	BaseURL   string    `json:"base_url"`
	APIKey    string    `json:"api_key,omitempty"` // omit from responses
	Model     string    `json:"model"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProviderConfig is one entry of providers.json
type ProviderConfig struct {
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	Enabled bool   `json:"enabled"`
}

// ProvidersFile is the on-disk providers.json shape
type ProvidersFile struct {
	Providers []ProviderConfig `json:"providers"`
}
