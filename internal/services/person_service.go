package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tripmate/internal/database"
	"tripmate/internal/models"

	"github.com/google/uuid"
)

// PersonService handles people (contacts) operations
type PersonService struct {
	db *database.DB
}

// NewPersonService creates a new person service
func NewPersonService(db *database.DB) *PersonService {
	return &PersonService{db: db}
}

// Create inserts a new contact. Name is required.
func (s *PersonService) Create(ctx context.Context, userID string, req models.CreatePersonRequest) (*models.Person, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	metOn := req.MetOn
	if metOn == "" {
		metOn = todayDate()
	}

	p := &models.Person{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Phone:    strings.TrimSpace(req.Phone),
		Whatsapp: strings.TrimSpace(req.Whatsapp),
		Email:    strings.TrimSpace(req.Email),
		WhereMet: strings.TrimSpace(req.WhereMet),
		MetOn:    metOn,
		Notes:    req.Notes,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO people (id, user_id, name, phone, whatsapp, email, where_met, met_on, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.UserID, p.Name, nullable(p.Phone), nullable(p.Whatsapp), nullable(p.Email), nullable(p.WhereMet), p.MetOn, nullable(p.Notes))
	if err != nil {
		return nil, fmt.Errorf("failed to insert person: %w", err)
	}

	return p, nil
}

// List returns all contacts for a user, most recently met first
func (s *PersonService) List(ctx context.Context, userID string) ([]models.Person, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, phone, whatsapp, email, where_met, met_on, notes
		FROM people
		WHERE user_id = ?
		ORDER BY met_on DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	return scanPeople(rows)
}

// Search returns contacts whose name or meeting place contains the query,
// case-insensitively
func (s *PersonService) Search(ctx context.Context, userID, query string) ([]models.Person, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, phone, whatsapp, email, where_met, met_on, notes
		FROM people
		WHERE user_id = ? AND (LOWER(name) LIKE ? OR LOWER(COALESCE(where_met, '')) LIKE ?)
		ORDER BY met_on DESC
	`, userID, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search people: %w", err)
	}
	defer rows.Close()

	return scanPeople(rows)
}

func scanPeople(rows *sql.Rows) ([]models.Person, error) {
	var people []models.Person
	for rows.Next() {
		var p models.Person
		var phone, whatsapp, email, whereMet, metOn, notes sql.NullString
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &phone, &whatsapp, &email, &whereMet, &metOn, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p.Phone = phone.String
		p.Whatsapp = whatsapp.String
		p.Email = email.String
		p.WhereMet = whereMet.String
		p.MetOn = metOn.String
		p.Notes = notes.String
		people = append(people, p)
	}
	return people, rows.Err()
}

// nullable converts an empty string to a SQL NULL
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
