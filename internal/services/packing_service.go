package services

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"tripmate/internal/database"
	"tripmate/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// PackingService handles the packing checklist
type PackingService struct {
	db *database.DB
}

// NewPackingService creates a new packing service
func NewPackingService(db *database.DB) *PackingService {
	return &PackingService{db: db}
}

// Create adds a packing item
func (s *PackingService) Create(ctx context.Context, userID string, req models.CreatePackingItemRequest) (*models.PackingItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	item := &models.PackingItem{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   req.Name,
		Region: req.Region,
		Packed: false,
		Notes:  req.Notes,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO packing_items (id, user_id, name, region, packed, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, item.ID, item.UserID, item.Name, nullable(item.Region), item.Packed, nullable(item.Notes))
	if err != nil {
		return nil, fmt.Errorf("failed to insert packing item: %w", err)
	}

	return item, nil
}

// List returns packing items for a user, optionally filtered by region
func (s *PackingService) List(ctx context.Context, userID, region string) ([]models.PackingItem, error) {
	query := `
		SELECT id, user_id, name, region, packed, notes
		FROM packing_items
		WHERE user_id = ?
	`
	args := []interface{}{userID}
	if region != "" {
		query += " AND region = ?"
		args = append(args, region)
	}
	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query packing items: %w", err)
	}
	defer rows.Close()

	var items []models.PackingItem
	for rows.Next() {
		var item models.PackingItem
		var reg, notes sql.NullString
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &reg, &item.Packed, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan packing item: %w", err)
		}
		item.Region = reg.String
		item.Notes = notes.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// Toggle flips the packed flag on an item and returns the new state
func (s *PackingService) Toggle(ctx context.Context, userID, id string) (*models.PackingItem, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE packing_items SET packed = NOT packed WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle packing item: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("packing item not found")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, region, packed, notes
		FROM packing_items
		WHERE id = ? AND user_id = ?
	`, id, userID)

	var item models.PackingItem
	var reg, notes sql.NullString
	if err := row.Scan(&item.ID, &item.UserID, &item.Name, &reg, &item.Packed, &notes); err != nil {
		return nil, fmt.Errorf("failed to scan packing item: %w", err)
	}
	item.Region = reg.String
	item.Notes = notes.String
	return &item, nil
}

// Delete removes a packing item
func (s *PackingService) Delete(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM packing_items WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete packing item: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("packing item not found")
	}
	return nil
}

// SeedFromFile loads the YAML seed template and inserts any items the user
// does not already have. Returns the number of items inserted.
func (s *PackingService) SeedFromFile(ctx context.Context, userID, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []models.PackingSeed
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	existing, err := s.List(ctx, userID, "")
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, item := range existing {
		have[item.Region+"|"+item.Name] = true
	}

	inserted := 0
	for _, seed := range seeds {
		for _, name := range seed.Items {
			if have[seed.Region+"|"+name] {
				continue
			}
			if _, err := s.Create(ctx, userID, models.CreatePackingItemRequest{
				Name:   name,
				Region: seed.Region,
			}); err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}
