package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"tripmate/internal/config"
	"tripmate/internal/database"
	"tripmate/internal/models"
)

// ProviderService manages OpenAI-compatible completion providers. The
// providers table mirrors providers.json; Sync reconciles the two so edits
// to the file take effect without a restart.
type ProviderService struct {
	db *database.DB
}

// NewProviderService creates a new provider service
func NewProviderService(db *database.DB) *ProviderService {
	return &ProviderService{db: db}
}

// List returns all providers
func (s *ProviderService) List(ctx context.Context) ([]models.LLMProvider, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, base_url, api_key, model, enabled, created_at, updated_at
		FROM providers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer rows.Close()

	var providers []models.LLMProvider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, *p)
	}
	return providers, rows.Err()
}

// Active returns the first enabled provider, or an error when none is
// configured
func (s *ProviderService) Active(ctx context.Context) (*models.LLMProvider, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, base_url, api_key, model, enabled, created_at, updated_at
		FROM providers
		WHERE enabled = 1
		ORDER BY id ASC
		LIMIT 1
	`)
	p, err := scanProvider(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no enabled provider configured")
	}
	return p, err
}

// Upsert inserts or updates a provider by name
func (s *ProviderService) Upsert(ctx context.Context, cfg models.ProviderConfig) error {
	if cfg.Name == "" || cfg.BaseURL == "" || cfg.Model == "" {
		return fmt.Errorf("provider requires name, base_url and model")
	}

	query := `
		INSERT INTO providers (name, base_url, api_key, model, enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			base_url = excluded.base_url,
			api_key = excluded.api_key,
			model = excluded.model,
			enabled = excluded.enabled,
			updated_at = excluded.updated_at
	`
	if s.db.IsMySQL() {
		query = `
			INSERT INTO providers (name, base_url, api_key, model, enabled, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				base_url = VALUES(base_url),
				api_key = VALUES(api_key),
				model = VALUES(model),
				enabled = VALUES(enabled),
				updated_at = VALUES(updated_at)
		`
	}

	now := time.Now()
	_, err := s.db.ExecContext(ctx, query, cfg.Name, cfg.BaseURL, nullable(cfg.APIKey), cfg.Model, cfg.Enabled, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert provider: %w", err)
	}
	return nil
}

// SetEnabled toggles a provider
func (s *ProviderService) SetEnabled(ctx context.Context, id int, enabled bool) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE providers SET enabled = ?, updated_at = ? WHERE id = ?
	`, enabled, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update provider: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("provider not found")
	}
	return nil
}

// SyncFromFile loads providers.json and upserts every entry. Providers
// present in the table but absent from the file are left alone.
func (s *ProviderService) SyncFromFile(ctx context.Context, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("⚠️ [PROVIDERS] %s not found, skipping sync", path)
		return nil
	}

	file, err := config.LoadProviders(path)
	if err != nil {
		return err
	}

	for _, cfg := range file.Providers {
		if err := s.Upsert(ctx, cfg); err != nil {
			return err
		}
	}

	log.Printf("✅ [PROVIDERS] Synced %d providers from %s", len(file.Providers), path)
	return nil
}

func scanProvider(r rowScanner) (*models.LLMProvider, error) {
	var p models.LLMProvider
	var apiKey sql.NullString
	if err := r.Scan(&p.ID, &p.Name, &p.BaseURL, &apiKey, &p.Model, &p.Enabled, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan provider: %w", err)
	}
	p.APIKey = apiKey.String
	return &p, nil
}
