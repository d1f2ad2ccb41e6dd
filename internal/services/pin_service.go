package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tripmate/internal/database"
	"tripmate/internal/models"

	"github.com/google/uuid"
)

// PinService handles map pin operations
type PinService struct {
	db *database.DB
}

// NewPinService creates a new pin service
func NewPinService(db *database.DB) *PinService {
	return &PinService{db: db}
}

// Create adds a pin. Status defaults to planned.
func (s *PinService) Create(ctx context.Context, userID string, req models.CreatePinRequest) (*models.Pin, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	status := req.Status
	if status == "" {
		status = models.PinStatusPlanned
	}
	if status != models.PinStatusPlanned && status != models.PinStatusVisited {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	now := time.Now()
	pin := &models.Pin{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Address:     req.Address,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Status:      status,
		ScheduledOn: req.ScheduledOn,
		VisitedOn:   req.VisitedOn,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pins (id, user_id, title, address, lat, lng, status, scheduled_on, visited_on, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, pin.ID, pin.UserID, pin.Title, nullable(pin.Address), pin.Lat, pin.Lng, pin.Status,
		nullable(pin.ScheduledOn), nullable(pin.VisitedOn), nullable(pin.Notes), pin.CreatedAt, pin.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert pin: %w", err)
	}

	return pin, nil
}

// List returns pins for a user, optionally filtered by status
func (s *PinService) List(ctx context.Context, userID, status string) ([]models.Pin, error) {
	query := `
		SELECT id, user_id, title, address, lat, lng, status, scheduled_on, visited_on, notes, created_at, updated_at
		FROM pins
		WHERE user_id = ?
	`
	args := []interface{}{userID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pins: %w", err)
	}
	defer rows.Close()

	var pins []models.Pin
	for rows.Next() {
		pin, err := scanPin(rows)
		if err != nil {
			return nil, err
		}
		pins = append(pins, *pin)
	}
	return pins, rows.Err()
}

// GetByID fetches one pin, scoped to the owning user
func (s *PinService) GetByID(ctx context.Context, userID, id string) (*models.Pin, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, address, lat, lng, status, scheduled_on, visited_on, notes, created_at, updated_at
		FROM pins
		WHERE id = ? AND user_id = ?
	`, id, userID)

	pin, err := scanPin(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pin not found")
	}
	return pin, err
}

// Update applies a partial update. Only fields present in the request change;
// marking a pin visited without a visited_on date stamps today.
func (s *PinService) Update(ctx context.Context, userID, id string, req models.UpdatePinRequest) (*models.Pin, error) {
	var sets []string
	var args []interface{}

	if req.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *req.Title)
	}
	if req.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, nullable(*req.Address))
	}
	if req.Lat != nil {
		sets = append(sets, "lat = ?")
		args = append(args, *req.Lat)
	}
	if req.Lng != nil {
		sets = append(sets, "lng = ?")
		args = append(args, *req.Lng)
	}
	if req.Status != nil {
		if *req.Status != models.PinStatusPlanned && *req.Status != models.PinStatusVisited {
			return nil, fmt.Errorf("invalid status: %s", *req.Status)
		}
		sets = append(sets, "status = ?")
		args = append(args, *req.Status)
		if *req.Status == models.PinStatusVisited && req.VisitedOn == nil {
			sets = append(sets, "visited_on = ?")
			args = append(args, todayDate())
		}
	}
	if req.ScheduledOn != nil {
		sets = append(sets, "scheduled_on = ?")
		args = append(args, nullable(*req.ScheduledOn))
	}
	if req.VisitedOn != nil {
		sets = append(sets, "visited_on = ?")
		args = append(args, nullable(*req.VisitedOn))
	}
	if req.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, nullable(*req.Notes))
	}

	if len(sets) == 0 {
		return s.GetByID(ctx, userID, id)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now())
	args = append(args, id, userID)

	query := fmt.Sprintf("UPDATE pins SET %s WHERE id = ? AND user_id = ?", strings.Join(sets, ", "))
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update pin: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("pin not found")
	}

	return s.GetByID(ctx, userID, id)
}

// Delete removes a pin
func (s *PinService) Delete(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM pins WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete pin: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("pin not found")
	}
	return nil
}

func scanPin(r rowScanner) (*models.Pin, error) {
	var pin models.Pin
	var address, scheduledOn, visitedOn, notes sql.NullString
	var lat, lng sql.NullFloat64
	if err := r.Scan(&pin.ID, &pin.UserID, &pin.Title, &address, &lat, &lng, &pin.Status,
		&scheduledOn, &visitedOn, &notes, &pin.CreatedAt, &pin.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan pin: %w", err)
	}
	pin.Address = address.String
	pin.ScheduledOn = scheduledOn.String
	pin.VisitedOn = visitedOn.String
	pin.Notes = notes.String
	if lat.Valid {
		pin.Lat = &lat.Float64
	}
	if lng.Valid {
		pin.Lng = &lng.Float64
	}
	return &pin, nil
}
